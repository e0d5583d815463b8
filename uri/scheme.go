package uri

import "github.com/ghettovoice/weburi/internal/util"

// Well-known default ports.
const (
	DefaultPortHTTP     uint32 = 80
	DefaultPortFTP      uint32 = 21
	DefaultPortHTTPS    uint32 = 443
	DefaultPortGopher   uint32 = 70
	DefaultPortLDAP     uint32 = 389
	DefaultPortNNTP     uint32 = 119
	DefaultPortSNEWS    uint32 = 563
	DefaultPortIMAP     uint32 = 143
	DefaultPortPOP      uint32 = 110
	DefaultPortSIP      uint32 = 5060
	DefaultPortRTSP     uint32 = 554
	DefaultPortWAIS     uint32 = 210
	DefaultPortProspero uint32 = 191
	DefaultPortNFS      uint32 = 2049
	DefaultPortTIP      uint32 = 3372
	DefaultPortACAP     uint32 = 674
	DefaultPortTelnet   uint32 = 23
	DefaultPortSSH      uint32 = 22
)

// schemes is searched linearly, most frequent first.
var schemes = [...]struct {
	name string
	port uint32
}{
	{"http", DefaultPortHTTP},
	{"ftp", DefaultPortFTP},
	{"https", DefaultPortHTTPS},
	{"gopher", DefaultPortGopher},
	{"ldap", DefaultPortLDAP},
	{"nntp", DefaultPortNNTP},
	{"snews", DefaultPortSNEWS},
	{"imap", DefaultPortIMAP},
	{"pop", DefaultPortPOP},
	{"sip", DefaultPortSIP},
	{"rtsp", DefaultPortRTSP},
	{"wais", DefaultPortWAIS},
	{"z39.50r", DefaultPortWAIS},
	{"z39.50s", DefaultPortWAIS},
	{"prospero", DefaultPortProspero},
	{"nfs", DefaultPortNFS},
	{"tip", DefaultPortTIP},
	{"acap", DefaultPortACAP},
	{"telnet", DefaultPortTelnet},
	{"ssh", DefaultPortSSH},
}

// DefaultPort returns the default port of the scheme or 0 if the scheme is unknown.
// Scheme names are compared case-insensitively.
func DefaultPort(scheme string) uint32 {
	port, _ := lookupScheme(scheme)
	return port
}

// KnownScheme reports whether the scheme has a registered default port.
func KnownScheme(scheme string) bool {
	_, ok := lookupScheme(scheme)
	return ok
}

func lookupScheme(scheme string) (uint32, bool) {
	if scheme == "" {
		return 0, false
	}
	for i := range schemes {
		if util.EqFold(schemes[i].name, scheme) {
			return schemes[i].port, true
		}
	}
	return 0, false
}
