//go:build darwin

package platform

/*
#cgo LDFLAGS: -framework Security
#include <string.h>
#include <Security/Authorization.h>

static OSStatus create_authorization(AuthorizationRef *ref) {
    return AuthorizationCreate(NULL, kAuthorizationEmptyEnvironment,
                               kAuthorizationFlagDefaults, ref);
}

static OSStatus make_external_form(AuthorizationRef ref, char *out) {
    AuthorizationExternalForm form;
    OSStatus status = AuthorizationMakeExternalForm(ref, &form);
    if (status != errAuthorizationSuccess) {
        return status;
    }
    memcpy(out, form.bytes, kAuthorizationExternalFormLength);
    return status;
}

static void free_authorization(AuthorizationRef ref) {
    AuthorizationFree(ref, kAuthorizationFlagDefaults);
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// ExternalFormLength is the size of a serialized authorization
// (kAuthorizationExternalFormLength).
const ExternalFormLength = 32

// Authorization Services status codes.
const (
	errAuthorizationSuccess  = 0
	errAuthorizationDenied   = -60005
	errAuthorizationCanceled = -60006
)

// securityProvider issues credentials through Authorization Services.
type securityProvider struct{}

func newSystemProvider() CredentialProvider {
	return securityProvider{}
}

func (securityProvider) Create() (Credential, error) {
	var ref C.AuthorizationRef
	if status := C.create_authorization(&ref); status != errAuthorizationSuccess {
		return nil, fmt.Errorf("AuthorizationCreate: OSStatus %d", int(status))
	}
	return ref, nil
}

func (securityProvider) ExternalForm(cred Credential) ([]byte, error) {
	ref, ok := cred.(C.AuthorizationRef)
	if !ok {
		return nil, fmt.Errorf("unexpected credential type %T", cred)
	}

	form := make([]byte, ExternalFormLength)
	status := C.make_external_form(ref, (*C.char)(unsafe.Pointer(&form[0])))
	if status != errAuthorizationSuccess {
		return nil, fmt.Errorf("AuthorizationMakeExternalForm: OSStatus %d", int(status))
	}
	return form, nil
}

func (securityProvider) Free(cred Credential) {
	if ref, ok := cred.(C.AuthorizationRef); ok && ref != nil {
		C.free_authorization(ref)
	}
}
