// Package brachistochrone is a discrete fastest-descent planner: given a
// square grid, a start and a goal, it finds the sequence of moves a bead
// sliding under gravity should take to reach the goal in the least time.
//
// 🚀 What is inside?
//
//	descent/ — ActionSet, CostModel, value table, backward-induction Solver,
//	           lazy path extraction, horizon heuristic, horizon-free reference
//	export/  — CSV rows, physical polylines, GeoJSON, nearest-sample index
//	job/     — one solve as a pollable background unit of work
//	config/  — YAML scenarios in metres, validated and converted to grid units
//	cmd/brachistochrone/ — command line front end
//
// Quick example (10 m square, 50 grid units per side):
//
//	brachistochrone solve --resolution 50 --format csv
//
//	x,y,time_to_go
//	0,50,...
//
// The core never looks at wall-clock time, files or flags; everything else
// is a thin layer over descent.
//
//	go get github.com/katalvlaran/brachistochrone/descent
package brachistochrone
