package obinary

import "github.com/orientsdk/orientgo/oerror"

// Precondition guards, evaluated at the start of each operation's
// Prepare before any field is encoded.  Guards only fail; the one
// sanctioned auto-remediation is DbOpen's lazy connect, which is an
// explicit branch in its Prepare, not error recovery here.

// alive rejects any use of a closed Transport.
func (t *Transport) alive() error {
	if t.closed {
		return oerror.ErrClosedConnection
	}
	return nil
}

// needConnected requires an authenticated session.
func (t *Transport) needConnected() error {
	if err := t.alive(); err != nil {
		return err
	}
	if t.sessionID < 0 {
		return oerror.SessionNotInitialized{}
	}
	return nil
}

// needDBOpened requires an open database on top of an authenticated
// session.
func (t *Transport) needDBOpened() error {
	if err := t.needConnected(); err != nil {
		return err
	}
	if t.dbOpened == "" {
		return oerror.DatabaseNotOpened{}
	}
	return nil
}
