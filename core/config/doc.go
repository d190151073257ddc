// Package config provides configuration management for the common-utils command.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Log: Logging level and format
//   - Files: Copy chunk size and the permissions used for created files and directories
//   - Format: Default currency, timezone and size units for the formatting commands
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Files.ChunkSize)
package config
