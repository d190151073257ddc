package files

// ReadFile reads path from the OS filesystem. See Service.ReadFile.
func ReadFile(path string) ([]byte, error) {
	return Default().ReadFile(path)
}

// WriteFile writes data to path on the OS filesystem. See Service.WriteFile.
func WriteFile(path string, data []byte) error {
	return Default().WriteFile(path, data)
}

// Copy recursively copies source to target on the OS filesystem. See Service.Copy.
func Copy(source, target string) error {
	return Default().Copy(source, target)
}

// Delete recursively deletes path on the OS filesystem. See Service.Delete.
func Delete(path string) error {
	return Default().Delete(path)
}
