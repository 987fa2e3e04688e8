// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scaffold

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Collection identifiers.
const (
	// DefaultCollection is substituted when no collection is requested.
	DefaultCollection = "@stencil/schematics"

	// StarterCollection materializes the embedded starter tree without
	// an external generator. Useful offline and in tests.
	StarterCollection = "starter"

	binSchematics = "schematics"
)

// CollectionNames is the closed set of supported collections.
var CollectionNames = []string{DefaultCollection, StarterCollection}

// schematicApplication is the schematic every project creation invokes.
const schematicApplication = "application"

// Collection generates project files from a named schematic and a flat,
// ordered option list.
type Collection interface {
	Execute(schematic string, options []SchematicOption) error
}

// CreateCollection resolves a collection name to its implementation.
// An empty name selects DefaultCollection; an unknown name fails before
// any file is touched.
func CreateCollection(name string) (Collection, error) {
	return resolveStrategy("collection", name, DefaultCollection, map[string]Collection{
		DefaultCollection: schematicRunner{collection: DefaultCollection},
		StarterCollection: starterCollection{},
	}, CollectionNames)
}

// schematicRunner shells out to the schematics binary. Options are
// forwarded in projection order so a given context always produces the
// same invocation.
type schematicRunner struct {
	collection string
}

func (r schematicRunner) Execute(schematic string, options []SchematicOption) error {
	args := append([]string{r.collection + ":" + schematic}, optionArgs(options)...)
	logf("generate: %s %v", binSchematics, args)
	cmd := exec.Command(binSchematics, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("executing schematic %s:%s: %w", r.collection, schematic, err)
	}
	logf("generate: done")
	return nil
}

// optionArgs renders options as argv entries in order. Booleans use the
// bare --name / --no-name forms; everything else is --name=value.
func optionArgs(options []SchematicOption) []string {
	var args []string
	for _, opt := range options {
		switch v := opt.Value.(type) {
		case bool:
			if v {
				args = append(args, "--"+opt.Name)
			} else {
				args = append(args, "--no-"+opt.Name)
			}
		default:
			args = append(args, fmt.Sprintf("--%s=%v", opt.Name, v))
		}
	}
	return args
}

// starterData is the template data for the embedded starter files.
type starterData struct {
	Name           string
	Directory      string
	PackageManager string
}

// starterFile pairs a project-relative path with its template. Kept as
// a slice so files are written in a fixed order.
type starterFile struct {
	path string
	tmpl string
}

var starterFiles = []starterFile{
	{"package.json", starterPackageJSON},
	{"tsconfig.json", starterTsConfig},
	{"src/main.ts", starterMainTs},
	{"README.md", starterReadme},
}

// starterCollection writes the embedded starter tree. It consumes the
// same projected option list as the external runner, reading the
// entries it understands and ignoring the rest.
type starterCollection struct{}

func (starterCollection) Execute(schematic string, options []SchematicOption) error {
	if schematic != schematicApplication {
		return fmt.Errorf("starter collection has no schematic %q", schematic)
	}

	data := starterData{PackageManager: binNpm}
	for _, opt := range options {
		s, ok := opt.Value.(string)
		if !ok {
			continue
		}
		switch opt.Name {
		case OptionName:
			data.Name = s
		case OptionDirectory:
			data.Directory = s
		case OptionPackageManager:
			data.PackageManager = s
		}
	}
	if data.Name == "" {
		return fmt.Errorf("starter collection: no name option provided")
	}
	if data.Directory == "" {
		data.Directory = data.Name
	}

	for _, f := range starterFiles {
		dst := filepath.Join(data.Directory, f.path)
		logf("starter: writing %s", dst)
		if err := writeSeedFile(dst, f.tmpl, data); err != nil {
			return fmt.Errorf("writing %s: %w", f.path, err)
		}
	}
	return writeProjectConfig(filepath.Join(data.Directory, DefaultConfigFile), DefaultConfig())
}

// writeSeedFile renders a starter template and writes it to path,
// creating parent directories as needed.
func writeSeedFile(path, tmplText string, data starterData) error {
	t, err := template.New(filepath.Base(path)).Parse(tmplText)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}
	var buf strings.Builder
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering template: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(buf.String()), 0o644)
}

// writeProjectConfig marshals cfg as YAML and writes it to path with a
// generated-file header.
func writeProjectConfig(path string, cfg Config) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	header := "# Stencil project configuration - generated by stencil new.\n\n"
	return os.WriteFile(path, append([]byte(header), data...), 0o644)
}

const starterPackageJSON = `{
  "name": "{{.Name}}",
  "version": "0.0.1",
  "private": true,
  "scripts": {
    "build": "tsc -p tsconfig.json",
    "start": "node dist/main.js"
  },
  "devDependencies": {
    "typescript": "^5.4.0"
  }
}
`

const starterTsConfig = `{
  "compilerOptions": {
    "module": "commonjs",
    "target": "ES2021",
    "outDir": "./dist",
    "rootDir": "./src",
    "strict": true,
    "declaration": true,
    "sourceMap": true
  },
  "include": ["src/**/*"]
}
`

const starterMainTs = `async function bootstrap(): Promise<void> {
  console.log("{{.Name}} is running");
}

void bootstrap();
`

const starterReadme = `# {{.Name}}

A project scaffolded with stencil.

## Scripts

- ` + "`{{.PackageManager}} install`" + ` installs dependencies
- ` + "`{{.PackageManager}} run build`" + ` compiles src/ into dist/
- ` + "`{{.PackageManager}} run start`" + ` runs the compiled entry point
`
