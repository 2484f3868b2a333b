// Package viz renders sweep results and trajectories for the terminal.
//
//   - [Plot]: asciigraph line chart
//   - [LogPlot]: chart of log10 values, for errors spanning many decades
//   - [Sparkline]: one-line chart
//   - [Section], [Metric], [Status]: styled headings, labelled values and check results
package viz
