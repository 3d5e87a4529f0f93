// Package logmessage turns emote log message markup into display text.
//
// A markup string is parsed once into a concrete tree (Parse), built into a
// typed AST (Build), and reduced into ConditionTexts (Message.Reduce): an
// ordered list of text leaves, each guarded by the conjunction of conditions
// needed to reach it. ConditionTexts are immutable and can be evaluated any
// number of times, concurrently, against different Answers.
//
//	texts, err := logmessage.Reduce(markup)
//	if err != nil {
//		return err
//	}
//	answers, err := logmessage.NewLogMessageAnswers(origin, target)
//	if err != nil {
//		return err
//	}
//	out := texts.Evaluate(answers)
package logmessage
