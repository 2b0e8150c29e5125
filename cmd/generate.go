package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jfmyers9/topsongs/internal/config"
)

func generateConfig(out io.Writer, dir string) error {
	res, err := config.WriteExampleConfig(dir)
	if err != nil {
		return err
	}
	if !res.Created {
		fmt.Fprintf(out, "Exists, not overwriting: %s\n", res.Path)
		return nil
	}
	fmt.Fprintf(out, "Wrote example config to %s\n", res.Path)
	return nil
}

func generateHTTP(out io.Writer, dir, which string) error {
	var names []string
	if name := strings.TrimSuffix(strings.TrimSpace(which), ".http"); name != "" && !strings.EqualFold(name, "all") {
		names = append(names, name)
	}

	results, err := config.WriteTemplates(dir, names...)
	if err != nil {
		return err
	}

	created := false
	for _, res := range results {
		if res.Created {
			created = true
			fmt.Fprintf(out, "Created %s\n", res.Path)
		} else {
			fmt.Fprintf(out, "Exists, not overwriting: %s\n", res.Path)
		}
	}
	if !created {
		fmt.Fprintf(out, "No files created (all requested templates already exist).\nLocation: %s\n", dir)
	}
	return nil
}
