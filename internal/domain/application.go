package domain

// DocumentType tags a document attachment by what it proves.
type DocumentType string

const (
	DocumentIDProof      DocumentType = "ID_PROOF"
	DocumentIncomeProof  DocumentType = "INCOME_PROOF"
	DocumentAddressProof DocumentType = "ADDRESS_PROOF"
)

// Document is one attachment on an application. The file reference is opaque
// to the pipeline; only the document validator interprets it.
type Document struct {
	Type    DocumentType
	FileRef string
}

// Application is the subject being adjudicated. It is immutable for the
// duration of one pipeline run. The run identifier lives on the audit trail,
// not on the application itself.
type Application struct {
	ApplicantName string
	Email         string
	Phone         string
	LoanAmount    float64
	LoanPurpose   string
	Documents     []Document
}
