package newswire

// DemoURLs returns the built-in article set the CLI researches when no URLs
// are given on the command line. The simulated feed resolves any URL, so the
// list exists purely to give demo runs a stable, readable shape.
func DemoURLs() []string {
	return []string{
		"http://example.com/ai_breakthrough_1",
		"http://example.com/quantum_computing_2",
		"http://example.com/robotics_advances_3",
		"http://example.com/mlops_best_practices_4",
		"http://example.com/data_privacy_concerns_5",
		"http://example.com/ethical_ai_guidelines_6",
	}
}
