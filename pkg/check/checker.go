package check

// Checker is implemented by all check types.
// Each check validates one aspect of an env file
// and returns a Result indicating success or failure.
//
// Implementations:
//   - filecheck.Check: checks existence, size and content of the file
//   - hashcheck.Check: computes and verifies the file's digest
type Checker interface {
	Run() Result
}
