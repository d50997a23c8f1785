package mqtt

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang/glog"

	"github.com/polarbots/mculink/pkg/link"
	"github.com/polarbots/mculink/pkg/link/packets"
)

// Topics relative to the queue prefix.
const (
	TopicLinkHealth = "status/link"
	TopicVelocity   = "cmd/velocity"
	TopicDebug      = "debug/"
)

// VelocityCmd is the JSON body accepted on the velocity topic.
type VelocityCmd struct {
	Vx float32 `json:"vx"`
	Vy float32 `json:"vy"`
	Wz float32 `json:"wz"`
}

// Bridge connects a link engine to the broker: decoded packets go out
// as JSON on per-kind topics, debug values fan out to debug/<name>,
// link health is published retained, and velocity commands are accepted
// back from the broker.
type Bridge struct {
	Queue  *Queue
	Engine *link.Engine

	// HealthInterval paces the link health poll.
	HealthInterval time.Duration
}

// NewBridge creates a Bridge and registers the engine callbacks.
func NewBridge(q *Queue, e *link.Engine) *Bridge {
	b := &Bridge{Queue: q, Engine: e, HealthInterval: time.Second}
	b.bind()
	return b
}

var publishedKinds = []packets.Kind{
	packets.KindIMU,
	packets.KindEvent,
	packets.KindAllRobotHP,
	packets.KindGameStatus,
	packets.KindRobotMotion,
	packets.KindGroundRobotPosition,
	packets.KindRFIDStatus,
	packets.KindRobotStatus,
	packets.KindGimbalCmd,
	packets.KindShootCmd,
}

func (b *Bridge) bind() {
	for _, kind := range publishedKinds {
		topic := kind.String()
		b.Engine.OnPacket(kind, func(p packets.Payload) {
			b.publishJSON(topic, p)
		})
	}
	b.Engine.OnPacket(packets.KindDebug, func(p packets.Payload) {
		debug := p.(*packets.Debug)
		for i := range debug.Records {
			name := debug.Records[i].NameString()
			if name == "" {
				continue
			}
			b.publishJSON(TopicDebug+name, debug.Records[i].Value)
		}
	})
}

func (b *Bridge) publishJSON(topic string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		glog.Errorf("marshal %s: %v", topic, err)
		return
	}
	glog.V(2).Infof("PUB %q", b.Queue.TopicPrefix+topic)
	b.Queue.Pub(topic, data)
}

func (b *Bridge) handleVelocity(topic string, payload []byte) {
	var cmd VelocityCmd
	if err := json.Unmarshal(payload, &cmd); err != nil {
		glog.Warningf("bad velocity command: %v", err)
		return
	}
	b.Engine.SetVelocity(cmd.Vx, cmd.Vy, cmd.Wz)
}

func (b *Bridge) publishHealth(h link.Health) {
	b.Queue.PubWith(TopicLinkHealth, []byte(h.String()), 0, true)
}

// Run implements framework.Runnable. It connects to the broker, wires
// the inbound velocity subscription, and republishes link health on
// change until the context is canceled.
func (b *Bridge) Run(ctx context.Context) error {
	token := b.Queue.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return err
	}
	defer b.Queue.Close()

	b.Queue.Sub(TopicVelocity, b.handleVelocity)

	health := b.Engine.Health()
	b.publishHealth(health)

	ticker := time.NewTicker(b.HealthInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if h := b.Engine.Health(); h != health {
				glog.Infof("link health %s -> %s", health, h)
				health = h
				b.publishHealth(h)
			}
		}
	}
}
