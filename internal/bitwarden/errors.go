package bitwarden

import "errors"

var (
	// ErrInvalidState reports an operation invoked while the vault status
	// does not meet its precondition (e.g. login while already
	// authenticated, or a server change while a session is active).
	ErrInvalidState = errors.New("operation invalid for current vault state")

	// ErrUnsupportedFormat reports an export format outside
	// json/csv/encrypted_json.
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrMissingEncryptionPassword reports an encrypted_json export
	// requested without an encryption password.
	ErrMissingEncryptionPassword = errors.New("encrypted export requires an encryption password")

	// ErrVaultNotUnlocked reports a sync attempted without an active
	// session.
	ErrVaultNotUnlocked = errors.New("vault is not unlocked")
)
