package config

// InputConfig defines limits applied while reading the compared inputs
type InputConfig struct {
	MaxInputSizeMB int `json:"max_input_size_mb,omitempty" yaml:"max_input_size_mb,omitempty" validate:"omitempty,min=0"`
}

// NewDefaultInputConfig creates default input configuration
func NewDefaultInputConfig() InputConfig {
	return InputConfig{
		MaxInputSizeMB: DefaultInputMaxSizeMB,
	}
}

// MaxInputSizeBytes returns the input limit in bytes; 0 means unlimited
func (c InputConfig) MaxInputSizeBytes() int64 {
	return int64(c.MaxInputSizeMB) * 1024 * 1024
}
