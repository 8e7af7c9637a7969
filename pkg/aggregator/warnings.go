package aggregator

import "fmt"

// CoordQueryFailureWarning is attached to a result when the
// coordination service could not be queried or held no data.
const CoordQueryFailureWarning = "Failed to query data from the coordination service. " +
	"The service may be down, overloaded, or unreachable over the network. " +
	"Check the coordination service logs to find the root cause."

// DaemonQueryFailureWarning describes a partially failed fan-out to
// the state daemons. The listing built from the surviving replies is
// still returned.
func DaemonQueryFailureWarning(total, failures int) string {
	return fmt.Sprintf("Failed to query data from some state daemons. You might have data loss. "+
		"Queried %d daemons and %d failed to reply. A daemon may be down, overloaded, "+
		"or unreachable over the network. Check the daemon logs to find the root cause.",
		total, failures)
}

// AgentQueryFailureWarning describes a partially failed fan-out to
// the state agents.
func AgentQueryFailureWarning(total, failures int) string {
	return fmt.Sprintf("Failed to query data from some state agents. You might have data loss. "+
		"Queried %d agents and %d failed to reply. An agent may be down, overloaded, "+
		"or unreachable over the network. Check the agent logs to find the root cause.",
		total, failures)
}
