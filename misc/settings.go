package misc

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// LoadSettings decodes the JSON settings file fileName into settings.
func LoadSettings(fileName string, settings interface{}) error {
	fileBytes, err := ReadFile(fileName)
	if err != nil {
		return err
	}
	err = sonic.Unmarshal(fileBytes, settings)
	if err != nil {
		return fmt.Errorf("unable to parse %s - %w", fileName, err)
	}
	return nil
}

// SaveSettings writes settings to fileName as JSON so a run can be repeated.
func SaveSettings(fileName string, settings interface{}) error {
	fileBytes, err := sonic.ConfigStd.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to encode settings - %w", err)
	}
	_, err = WriteFile(fileName, fileBytes)
	return err
}
