package core

// DeviceReport describes one physical device as seen by selection
type DeviceReport struct {
	Index       int             `json:"index"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	VendorID    uint32          `json:"vendorId"`
	DeviceID    uint32          `json:"deviceId"`
	LocalMemory uint64          `json:"localMemory"`
	Queues      QueueFamilyInfo `json:"queues"`
	Unified     bool            `json:"unified"`
	Score       int             `json:"score"`
	Selected    bool            `json:"selected"`
}

// Probe opens a window, an instance and a surface, ranks every physical
// device the way Bootstrap would, then releases everything. No logical
// device is created.
func Probe(platform Platform, driver Driver, opts BootstrapOptions, log Logger) (reports []DeviceReport, err error) {
	c := &Context{
		log:    log,
		guards: guards{log: log},
	}
	defer func() {
		if err != nil {
			c.fail(err)
			return
		}
		c.Destroy()
	}()

	if err := opts.Validate(); err != nil {
		return nil, &WindowCreationError{Err: err}
	}
	if err := c.openWindow(platform, opts.Window); err != nil {
		return nil, err
	}

	extensions := NegotiateExtensions(c.window.RequiredExtensions(), opts.Validation)
	instance, err := CreateInstance(driver, extensions, NegotiateLayers(opts.Validation), opts.Validation, log)
	if err != nil {
		return nil, err
	}
	c.instance = instance
	c.guards.push("instance", instance.Destroy)
	c.advance(StateInstanceCreated)
	c.attachDiagnostics(opts.Validation)

	if err := c.createSurface(); err != nil {
		return nil, err
	}

	devices, err := instance.PhysicalDevices()
	if err != nil {
		return nil, &NoSuitableDeviceError{Err: err}
	}
	candidates := RankDevices(devices, c.surface, opts.DeviceFilter, log)
	best := Best(candidates)

	reports = make([]DeviceReport, 0, len(candidates))
	for i, cand := range candidates {
		reports = append(reports, DeviceReport{
			Index:       cand.Index,
			Name:        cand.Properties.Name,
			Type:        cand.Properties.Type.String(),
			VendorID:    cand.Properties.VendorID,
			DeviceID:    cand.Properties.DeviceID,
			LocalMemory: cand.Properties.LocalMemory(),
			Queues:      cand.Queues,
			Unified:     cand.Queues.Unified(),
			Score:       cand.Score,
			Selected:    i == best,
		})
	}
	return reports, nil
}
