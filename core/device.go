package core

// QueueRequest asks for queues from one queue family
type QueueRequest struct {
	Family     uint32
	Priorities []float32
}

// queueRequests builds one single-queue, full priority request per
// distinct graphics and present family.
func queueRequests(queues QueueFamilyInfo) []QueueRequest {
	requests := []QueueRequest{{
		Family:     queues.Graphics.Index,
		Priorities: []float32{1.0},
	}}
	if !queues.Unified() {
		requests = append(requests, QueueRequest{
			Family:     queues.Present.Index,
			Priorities: []float32{1.0},
		})
	}
	return requests
}

// CreateLogicalDevice creates the logical device for the resolved queue
// families and retrieves the graphics and present queues. When the
// families are unified both queues are the same queue.
func CreateLogicalDevice(physical PhysicalDevice, queues QueueFamilyInfo, log Logger) (Device, Queue, Queue, error) {
	requests := queueRequests(queues)
	for _, r := range requests {
		log.Verbosef("Requesting queue from family #%d", r.Family)
	}

	device, err := physical.CreateDevice(requests)
	if err != nil {
		dce := &DeviceCreationError{Reason: classifyDevice(err), Err: err}
		log.Warnf("Logical device creation failed: %s", dce.Reason)
		return nil, nil, nil, dce
	}

	graphics := device.Queue(queues.Graphics.Index, 0)
	present := device.Queue(queues.Present.Index, 0)
	log.Verbosef("Created logical device (unified graphics and present: %t)", queues.Unified())
	return device, graphics, present, nil
}
