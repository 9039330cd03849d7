package montgomery

import "github.com/jasl/ring-xous/internal/callcounters"

// This file is part of the montgomery package. See the documentation of montgomery.go for general remarks.

// The counters are registered regardless of build tags, so reports list them with a count of 0 if nothing was counted.
var (
	_ = callcounters.CreateNewCallCounter("MontgomeryOps", "Montgomery operations", "")
	_ = callcounters.CreateNewCallCounter("Reduce", "", "MontgomeryOps")
	_ = callcounters.CreateNewCallCounter("Multiply", "", "MontgomeryOps")
	_ = callcounters.CreateNewCallCounter("FromMontgomery", "", "MontgomeryOps")
	_ = callcounters.CreateNewCallCounter("MulAddLimb", "multiply-accumulate rounds", "")
)
