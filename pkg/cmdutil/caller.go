package cmdutil

import (
	"os"
	"path/filepath"
	"regexp"
)

func GetCaller() string {
	binary := "iotctl"
	raw := os.Args[0]
	regex := regexp.MustCompile(`iotctl`)
	if bin := filepath.Base(raw); regex.MatchString(bin) {
		binary = bin
	}
	return binary
}
