package config

import "fmt"

// DeveloperConfig holds the level/experience rule thresholds. Loaded
// once at startup and injected into the developer service.
type DeveloperConfig struct {
	// MinSeniorExperienceYears is the minimum experience required for SENIOR.
	MinSeniorExperienceYears int
	// MaxJuniorExperienceYears is the maximum experience allowed for JUNIOR.
	MaxJuniorExperienceYears int
}

// LoadDeveloperConfigFromEnv loads rule thresholds from environment variables.
func LoadDeveloperConfigFromEnv() DeveloperConfig {
	return DeveloperConfig{
		MinSeniorExperienceYears: GetEnvInt("DEVELOPER_MIN_SENIOR_YEARS", 10),
		MaxJuniorExperienceYears: GetEnvInt("DEVELOPER_MAX_JUNIOR_YEARS", 4),
	}
}

// Validate validates rule threshold configuration.
func (c DeveloperConfig) Validate() error {
	if c.MinSeniorExperienceYears < 0 {
		return fmt.Errorf("DEVELOPER_MIN_SENIOR_YEARS must be non-negative")
	}
	if c.MaxJuniorExperienceYears < 0 {
		return fmt.Errorf("DEVELOPER_MAX_JUNIOR_YEARS must be non-negative")
	}
	if c.MaxJuniorExperienceYears >= c.MinSeniorExperienceYears {
		return fmt.Errorf(
			"DEVELOPER_MAX_JUNIOR_YEARS (%d) must be less than DEVELOPER_MIN_SENIOR_YEARS (%d)",
			c.MaxJuniorExperienceYears, c.MinSeniorExperienceYears)
	}
	return nil
}
