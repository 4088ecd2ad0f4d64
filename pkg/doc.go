// Package pkg provides the core libraries for arcgrid, a toolkit for solving
// ARC (Abstraction and Reasoning Corpus) tasks with small grid primitives.
//
// # Overview
//
// A task is a handful of input/output grid pairs; a solution is a function
// from input grid to output grid. The pkg directory is organized into three
// areas:
//
//  1. Primitives - [grid], [objects], [reach], [periodic], [replicate]
//  2. Tasks and solutions - [task], [solutions]
//  3. Infrastructure - [pipeline], [cache], [render], [server], [config]
//
// # Architecture
//
// The typical data flow through arcgrid:
//
//	Task file (JSON)
//	     ↓
//	[task] package (load + validate)
//	     ↓
//	[solutions] package (per-task solver built from primitives)
//	     ↓
//	[pipeline] package (evaluate, cache, batch)
//	     ↓
//	terminal / SVG / PNG / TIFF / JSON output
//
// # Quick Start
//
// Fill every background region the border cannot reach:
//
//	g := grid.MustParse("333\n303\n333")
//	out, _ := reach.FillEnclosed(g, 4)
//	fmt.Println(out)
//
// Evaluate a task with its registered solution:
//
//	t, _ := task.LoadID("ARC-AGI/data/training", "00d62c1b")
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, _ := runner.Evaluate(ctx, t)
//	fmt.Println(res.Counts())
//
// # Error Handling
//
// Errors carry machine-readable codes from [errors]. Grid primitives only
// fail on contract violations such as OUT_OF_BOUNDS or NO_OBJECTS_FOUND.
//
// [grid]: github.com/matzehuels/arcgrid/pkg/grid
// [objects]: github.com/matzehuels/arcgrid/pkg/objects
// [reach]: github.com/matzehuels/arcgrid/pkg/reach
// [periodic]: github.com/matzehuels/arcgrid/pkg/periodic
// [replicate]: github.com/matzehuels/arcgrid/pkg/replicate
// [task]: github.com/matzehuels/arcgrid/pkg/task
// [solutions]: github.com/matzehuels/arcgrid/pkg/solutions
// [pipeline]: github.com/matzehuels/arcgrid/pkg/pipeline
// [cache]: github.com/matzehuels/arcgrid/pkg/cache
// [render]: github.com/matzehuels/arcgrid/pkg/render
// [server]: github.com/matzehuels/arcgrid/pkg/server
// [config]: github.com/matzehuels/arcgrid/pkg/config
// [errors]: github.com/matzehuels/arcgrid/pkg/errors
package pkg
