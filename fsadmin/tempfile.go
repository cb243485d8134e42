package fsadmin

import "os"

// writeTempFile writes data to a new temporary file named {prefix}-*{suffix}
// and returns its path. The caller is responsible for removing the file.
func writeTempFile(prefix, suffix string, data []byte) (string, error) {
	f, err := os.CreateTemp("", prefix+"-*"+suffix)
	if err != nil {
		return "", err
	}

	path := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}

	return path, nil
}
