/*
Copyright 2026 The Unicase Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"

	"github.com/unicase/unicase/internal/bytecode"
)

const licenseHeader = `/*
Copyright 2026 The Unicase Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
`

// Generator accumulates Go source and gofmts it on the way out.
type Generator struct {
	bytes.Buffer
}

func NewGenerator(pkg string) *Generator {
	g := &Generator{}
	g.WriteString(licenseHeader)
	fmt.Fprintf(g, "\n// Code generated by maketables. DO NOT EDIT.\n\n")
	fmt.Fprintf(g, "package %s\n\n", pkg)
	return g
}

func (g *Generator) WriteProgram(name, doc string, p bytecode.Program) {
	fmt.Fprintf(g, "// %s %s\n", name, doc)
	fmt.Fprintf(g, "var %s = []byte{", name)
	for i, b := range p {
		if i%12 == 0 {
			g.WriteString("\n\t")
		} else {
			g.WriteString(" ")
		}
		fmt.Fprintf(g, "0x%02x,", b)
	}
	g.WriteString("\n}\n\n")
}

func (g *Generator) WriteToFile(out string) {
	formatted, err := format.Source(g.Bytes())
	if err != nil {
		log.Fatalf("failed to format generated code: %v", err)
	}
	if err := os.WriteFile(out, formatted, 0o644); err != nil {
		log.Fatal(err)
	}
}
