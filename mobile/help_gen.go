// Copyright 2017 The Calc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

package main

import (
	"bytes"
	"go/build"
	"go/doc"
	"go/parser"
	"go/token"
	"log"
	"os"
	"text/template"
)

func main() {
	pkg, err := build.Import("keypad.dev/calc", "", build.ImportComment)
	if err != nil {
		log.Fatal(err)
	}
	fs := token.NewFileSet()
	pkgs, err := parser.ParseDir(fs, pkg.Dir, nil, parser.ParseComments)
	if err != nil {
		log.Fatal(err)
	}
	astPkg := pkgs[pkg.Name]
	if astPkg == nil {
		log.Fatalf("failed to locate %s package", pkg.Name)
	}

	docPkg := doc.New(astPkg, pkg.ImportPath, doc.AllDecls)
	text := docPkg.Text(docPkg.Doc)

	tmpl.Execute(os.Stdout, string(bytes.ReplaceAll(text, []byte{'`'}, []byte{'"'})))
}

var tmpl = template.Must(template.New("help.go").Parse("package mobile\n\n// GENERATED; DO NOT EDIT\nconst help = `{{.}}`\n"))
