package mqtt

import (
	"os"

	"github.com/denisbrodbeck/machineid"
)

// defaultClientID derives a stable MQTT client ID from the machine.
func defaultClientID() string {
	id, err := machineid.ProtectedID("mculink")
	if err != nil {
		host, _ := os.Hostname()
		return "mculink-" + host
	}
	if len(id) > 16 {
		id = id[:16]
	}
	return "mculink-" + id
}
