// Package orchestration runs the demonstration steps in a fixed order and
// collects their outcomes. It decouples step execution from presentation via
// the StepObserver and ResultPresenter interfaces.
package orchestration
