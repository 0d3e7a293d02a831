package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/classifier.txt
	classifierRaw string

	//go:embed template/billing.txt
	billingRaw string

	//go:embed template/network_diagnose.txt
	networkDiagnoseRaw string

	//go:embed template/network_solve.txt
	networkSolveRaw string

	//go:embed template/catalog.txt
	catalogRaw string

	//go:embed template/knowledge.txt
	knowledgeRaw string
)

// PromptSet holds loaded prompt content.
type PromptSet struct {
	Classifier      string
	Billing         string
	NetworkDiagnose string
	NetworkSolve    string
	Catalog         string
	Knowledge       string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
// This is safe to call concurrently; the embed is compile-time, and trimming is cheap.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Classifier:      strings.TrimSpace(classifierRaw),
		Billing:         strings.TrimSpace(billingRaw),
		NetworkDiagnose: strings.TrimSpace(networkDiagnoseRaw),
		NetworkSolve:    strings.TrimSpace(networkSolveRaw),
		Catalog:         strings.TrimSpace(catalogRaw),
		Knowledge:       strings.TrimSpace(knowledgeRaw),
	}
}
