package core

// CreateInstance creates the API instance with the negotiated
// extensions and layers. Failures are not retried.
func CreateInstance(driver Driver, extensions, layers []string, validation bool, log Logger) (Instance, error) {
	log.Verbosef("Creating vulkan instance with following extensions:")
	for _, ext := range extensions {
		log.Verbosef("\t%s", ext)
	}
	if validation {
		log.Verbosef("Validation layers requested:")
		for _, layer := range layers {
			log.Verbosef("\t%s", layer)
		}
	}

	instance, err := driver.CreateInstance(extensions, layers)
	if err != nil {
		ice := &InstanceCreationError{Reason: classifyInstance(err), Err: err}
		log.Warnf("Vulkan instance creation failed: %s", ice.Reason)
		return nil, ice
	}
	return instance, nil
}
