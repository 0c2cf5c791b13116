package main

import (
	"bytes"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

const (
	defaultBinary = "./rsleep"
	readmeFile    = "README.md"
	wrapWidth     = 80
)

var usageBlock = regexp.MustCompile(`(?s)<!-- BEGIN USAGE -->.*<!-- END USAGE -->`)

func helpText(binary string) (string, error) {
	var cmdOutput bytes.Buffer
	cmd := exec.Command(binary, "--help")
	cmd.Stdout = &cmdOutput

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return wordwrap.WrapString(strings.TrimSpace(cmdOutput.String()), wrapWidth), nil
}

func main() {
	binary := defaultBinary
	if len(os.Args) > 1 {
		binary = os.Args[1]
	}

	content, err := os.ReadFile(readmeFile)
	if err != nil {
		log.Fatalf("Failed to read %q: %v", readmeFile, err)
	}

	help, err := helpText(binary)
	if err != nil {
		log.Fatalf("Failed to run %q: %v", binary, err)
	}

	if !usageBlock.Match(content) {
		log.Fatalf("No usage block in %q", readmeFile)
	}

	newUsageBlock := "<!-- BEGIN USAGE -->\n```none\n" + help + "\n```\n<!-- END USAGE -->"
	updatedContent := usageBlock.ReplaceAllLiteralString(string(content), newUsageBlock)

	if err := os.WriteFile(readmeFile, []byte(updatedContent), 0o644); err != nil {
		log.Fatalf("Failed to write %q: %v", readmeFile, err)
	}
}
