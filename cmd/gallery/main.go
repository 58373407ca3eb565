// @title        Photo Gallery API
// @version      1.0
// @description  Upload, browse and curate a dated photo gallery.
// @BasePath     /
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
