package messaging

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, "page.title", "Dice roll statistics")
	message.SetString(lang, "page.subtitle", "Exploring the distribution of random variables")
	message.SetString(lang, "page.course", "PHYS-1, ITMO University")

	message.SetString(lang, "controls.heading", "Parameters")
	message.SetString(lang, "controls.rolls", "Number of rolls")
	message.SetString(lang, "controls.rolls.help", "Increase for more accurate results")
	message.SetString(lang, "controls.dice", "Number of dice")
	message.SetString(lang, "controls.bias", "Dice imperfection")
	message.SetString(lang, "controls.bias.help", "Shift of the centre of mass (0 = perfect die)")
	message.SetString(lang, "controls.run", "Run simulation")
	message.SetString(lang, "controls.running", "Running simulation...")
	message.SetString(lang, "controls.done", "Done!")
	message.SetString(lang, "controls.again", "Run again")

	message.SetString(lang, "plot.axis.sum", "Sum of points")
	message.SetString(lang, "plot.axis.value", "Value")
	message.SetString(lang, "plot.axis.density", "Probability density")
	message.SetString(lang, "plot.legend.experiment", "Experiment")
	message.SetString(lang, "plot.legend.theory", "Theory")
	message.SetString(lang, "plot.legend.normal", "Normal distribution")

	message.SetString(lang, "results.heading", "Analysis of results")
	message.SetString(lang, "results.empirical", "Experimental values")
	message.SetString(lang, "results.theoretical", "Theoretical values")
	message.SetString(lang, "results.mean", "Mean")
	message.SetString(lang, "results.std", "Standard deviation")
	message.SetString(lang, "results.expected_mean", "Expected mean")
	message.SetString(lang, "results.expected_std", "Expected deviation")
	message.SetString(lang, "results.summary", "%d rolls of %d dice, bias %+.2f")
	message.SetString(lang, "results.clamped", "Some parameters were outside the allowed range and have been adjusted.")
	message.SetString(lang, "error.title", "Error")

	message.SetString(lang, "theory.title", "Theory reference")
	message.SetString(lang, "theory.heading", "Statistical regularities")
	message.SetString(lang, "theory.one_die", "One die: uniform distribution")
	message.SetString(lang, "theory.several_dice", "Several dice: normal distribution (Central Limit Theorem)")
	message.SetString(lang, "theory.bias", "Imperfection: shifted probabilities")

	message.SetString(lang, "comment.close.0", "Right on target. The law of large numbers is doing its job.")
	message.SetString(lang, "comment.close.1", "The sample agrees with theory within ordinary random noise.")
	message.SetString(lang, "comment.close.2", "Textbook result. Your dice behave exactly as expected.")
	message.SetString(lang, "comment.far.0", "The sample wanders away from theory. Try more rolls.")
	message.SetString(lang, "comment.far.1", "Quite far from the expected mean. Small samples can be stubborn.")
	message.SetString(lang, "comment.far.2", "Unusual outcome! Rerun and see whether it repeats.")
}
