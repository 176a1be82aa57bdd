package act

import (
	"fmt"

	"github.com/anthdm/hollywood/actor"

	"chartlink/event"
)

// GetPublishPID addresses the publish actor of pair. Consumers are spawned
// under their exchange name with ID 1 and spawn one symbol actor per pair.
func GetPublishPID(pair event.Pair) *actor.PID {
	return actor.NewPID("local", fmt.Sprintf("%s/1/symbol/%s/publish/%s", pair.Exchange, pair.Symbol, pair.Symbol))
}
