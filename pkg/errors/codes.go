package errors

import "strings"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	ErrCodeInternal       ErrorCode = "COMMON_001"
	ErrCodeBadRequest     ErrorCode = "COMMON_002"
	ErrCodeNotFound       ErrorCode = "COMMON_003"
	ErrCodeValidation     ErrorCode = "COMMON_004"
	ErrCodeNotImplemented ErrorCode = "COMMON_005"
)

// Canonical aliases used at call sites.
const (
	CodeInternal       = ErrCodeInternal
	CodeInvalidParam   = ErrCodeBadRequest
	CodeNotFound       = ErrCodeNotFound
	CodeValidation     = ErrCodeValidation
	CodeNotImplemented = ErrCodeNotImplemented
	CodeOK             = ErrorCode("OK")
	CodeUnknown        = ErrorCode("UNKNOWN")
)

// Molecule module error codes.
const (
	ErrCodeMoleculeInvalidSMILES ErrorCode = "MOL_001"
	ErrCodeMoleculeInvalidInChI  ErrorCode = "MOL_002"
	ErrCodeMoleculeInvalidFormat ErrorCode = "MOL_003"
)

// Sequence module error codes.
const (
	ErrCodeSequenceKindInvalid ErrorCode = "SEQ_001"
	ErrCodeSequenceEmpty       ErrorCode = "SEQ_002"
)

// Formula module error codes.
const (
	ErrCodeFormulaInvalid ErrorCode = "FRM_001"
)

// Configuration error codes.
const (
	ErrCodeConfigInvalid  ErrorCode = "CFG_001"
	ErrCodeConfigNotFound ErrorCode = "CFG_002"
)

// Domain-specific aliases.
const (
	CodeMoleculeInvalidSMILES = ErrCodeMoleculeInvalidSMILES
	CodeMoleculeInvalidInChI  = ErrCodeMoleculeInvalidInChI
	CodeMoleculeInvalidFormat = ErrCodeMoleculeInvalidFormat
	CodeSequenceKindInvalid   = ErrCodeSequenceKindInvalid
	CodeSequenceEmpty         = ErrCodeSequenceEmpty
	CodeFormulaInvalid        = ErrCodeFormulaInvalid
	CodeConfigInvalid         = ErrCodeConfigInvalid
	CodeConfigNotFound        = ErrCodeConfigNotFound
)

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:       "internal error",
	ErrCodeBadRequest:     "bad request",
	ErrCodeNotFound:       "resource not found",
	ErrCodeValidation:     "validation failed",
	ErrCodeNotImplemented: "not implemented",

	ErrCodeMoleculeInvalidSMILES: "invalid SMILES format",
	ErrCodeMoleculeInvalidInChI:  "invalid InChI format",
	ErrCodeMoleculeInvalidFormat: "unsupported molecule input format",

	ErrCodeSequenceKindInvalid: "unsupported sequence kind",
	ErrCodeSequenceEmpty:       "sequence cannot be empty",

	ErrCodeFormulaInvalid: "invalid molecular formula",

	ErrCodeConfigInvalid:  "invalid configuration",
	ErrCodeConfigNotFound: "configuration file not found",
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// ModuleForCode returns the module prefix of an ErrorCode (e.g. "MOL").
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
