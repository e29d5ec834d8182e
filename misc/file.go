package misc

import (
	"errors"
	"fmt"
	"io"
	"os"
)

func ReadFile(fileName string) ([]byte, error) {
	if fileName == "" {
		return nil, errors.New("no filename supplied")
	}
	// open file for reading
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s - %w", fileName, err)
	}
	// read contents from open file
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("unable to read %s - %w", fileName, err)
	}
	// close file
	err = file.Close()
	if err != nil {
		return nil, fmt.Errorf("unable to close %s - %w", fileName, err)
	}

	return fileBytes, nil
}

// CreateFile creates or truncates fileName and hands the open file to write.
// The file is closed afterwards and a close error is reported like a write error.
func CreateFile(fileName string, write func(w io.Writer) error) error {
	if fileName == "" {
		return errors.New("no filename supplied")
	}
	// create/truncate file for writing
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("unable to create file %s - %w", fileName, err)
	}
	// write contents to open file
	err = write(file)
	if err != nil {
		file.Close()
		return fmt.Errorf("unable to write file %s - %w", fileName, err)
	}
	// close file
	err = file.Close()
	if err != nil {
		return fmt.Errorf("unable to close file %s - %w", fileName, err)
	}

	return nil
}

func WriteFile(fileName string, contents []byte) (int, error) {
	var bytesWritten int
	err := CreateFile(fileName, func(w io.Writer) error {
		var err error
		bytesWritten, err = w.Write(contents)
		return err
	})
	return bytesWritten, err
}
