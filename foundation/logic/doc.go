// File: doc.go
// Title: Logic Package Documentation
// Description: Documents the high-level formula engine that fronts the
//              scanner, parser, and AST packages.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-21
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-21 v0.1.0: Initial logic package

/*
Package logic provides the high-level entry point for parsing
propositional-logic formulas in LaTeX prefix notation.

The Engine validates input, runs the two-stage front end from the parser
subpackage, optionally enforces end of input (strict mode), and renders
ASTs back to their canonical form. It is the single inbound interface for
the CLI, the example-file driver, the REPL, the gateway, and the TUI.

Usage:

	engine, err := logic.New()
	if err != nil {
		return err
	}

	formula, err := engine.Parse(`(\wedge true (\neg 2))`)
	if err != nil {
		var fe *logic.Error
		if errors.As(err, &fe) {
			fmt.Printf("failed in stage %s: %v\n", fe.Stage, fe.Err)
		}
		return err
	}

	fmt.Println(engine.Render(formula))

Engines are safe for concurrent use; every Parse call owns its own
scanner/parser pair.
*/
package logic
