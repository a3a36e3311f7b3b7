// Package scqbf is an in-memory toolkit for the Set-Cover Quadratic
// Binary Function problem — instances, incremental evaluation, and a
// Tabu Search metaheuristic engine.
//
// 🚀 What is scqbf?
//
//	A compact, deterministic library that brings together:
//		• Problem layer: immutable instances, coverage sets as roaring
//		  bitmaps, a stateless incremental evaluator
//		• Instance I/O: the classic upper-triangular text format, plus a
//		  seeded random generator for benchmarks
//		• Tabu Search: tenure-bounded short-term memory, aspiration,
//		  first- and best-improving strategies, probabilistic candidate
//		  sampling, intensification by restart
//
// ✨ Why choose scqbf?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – every run is driven by one explicit seed
//   - Incremental – O(|S|) move deltas instead of full re-evaluation
//   - Extensible – per-iteration hooks and history for custom logic
//
// Under the hood, everything is organized under two subpackages:
//
//	qbf/  — Instance, Solution, Evaluator, parser & random generator
//	tabu/ — Options, Solve, tabu list, restart-intensification
//
// Quick sketch of the problem:
//
//	maximize  Σ aᵢⱼ·xᵢ·xⱼ
//	subject to ⋃_{i: xᵢ=1} Sᵢ = {1..n},  x ∈ {0,1}ⁿ
//
// Dive into the package docs for usage, option reference and the exact
// move semantics of the search.
//
//	go get github.com/katalvlaran/scqbf
package scqbf
