// Package synth generates synthetic observation data.
//
// Generate builds a table of random-walk columns, optionally with a
// categorical Group column and a daily Date column, in the spirit of a quick
// fake DataFrame for trying out analysis code:
//
//	frame, err := synth.Generate(synth.DefaultOptions())
//	a := frame.Column("A")
//	frame.WriteCSV(os.Stdout)
//
// Random walks wander below zero, so they usually need shifting before they
// can be measured for inequality. Incomes draws strictly positive values from
// a chosen distribution instead:
//
//	values, err := synth.Incomes(1000, synth.LogNormal{Mu: 10, Sigma: 0.8}, 42)
//	g, err := inequality.Gini(values)
package synth
