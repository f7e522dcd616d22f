package entities

// Application is the part of an application record this service reads
type Application struct {
	AppID   string `dynamodbav:"app_id"`
	AppName string `dynamodbav:"app_name"`

	nameStored bool
}

// SetName records a stored app_name, which may be empty
func (a *Application) SetName(name string) {
	a.AppName = name
	a.nameStored = true
}

// DisplayName returns the application name, or UnknownName when the record
// has no app_name attribute. A stored empty name is returned as is.
func (a *Application) DisplayName() string {
	if a.AppName == "" && !a.nameStored {
		return UnknownName
	}
	return a.AppName
}

// Wave is the part of a wave record this service reads
type Wave struct {
	WaveID   string `dynamodbav:"wave_id"`
	WaveName string `dynamodbav:"wave_name"`

	nameStored bool
}

// SetName records a stored wave_name, which may be empty
func (w *Wave) SetName(name string) {
	w.WaveName = name
	w.nameStored = true
}

// DisplayName returns the wave name, or UnknownName when the record has no
// wave_name attribute
func (w *Wave) DisplayName() string {
	if w.WaveName == "" && !w.nameStored {
		return UnknownName
	}
	return w.WaveName
}
