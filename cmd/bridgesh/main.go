package main

//go-build: CGO_ENABLED=0

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"

	"github.com/abiosoft/ishell"

	"github.com/polarbots/mculink/pkg/pub/mqtt"
)

var (
	mqttURL = "mqtt://localhost:1883/mculink/"
)

func init() {
	if val := os.Getenv("MCULINK_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
}

type console struct {
	queue *mqtt.Queue

	mu     sync.Mutex
	health string
	debug  map[string]float64
}

func newConsole(q *mqtt.Queue) *console {
	c := &console{queue: q, health: "unknown", debug: make(map[string]float64)}
	q.Sub(mqtt.TopicLinkHealth, func(_ string, payload []byte) {
		c.mu.Lock()
		c.health = string(payload)
		c.mu.Unlock()
	})
	q.Sub(mqtt.TopicDebug+"#", func(topic string, payload []byte) {
		var v float64
		if err := json.Unmarshal(payload, &v); err != nil {
			return
		}
		c.mu.Lock()
		c.debug[topic[len(mqtt.TopicDebug):]] = v
		c.mu.Unlock()
	})
	return c
}

func (c *console) healthCmd(ctx *ishell.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ctx.Printf("link: %s\n", c.health)
}

func (c *console) debugCmd(ctx *ishell.Context) {
	c.mu.Lock()
	names := make([]string, 0, len(c.debug))
	for name := range c.debug {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ctx.Printf("%-16s %g\n", name, c.debug[name])
	}
	c.mu.Unlock()
	if len(names) == 0 {
		ctx.Println("no debug values seen yet")
	}
}

func (c *console) velCmd(ctx *ishell.Context) {
	if len(ctx.Args) != 3 {
		ctx.Err(fmt.Errorf("usage: vel VX VY WZ"))
		return
	}
	var vals [3]float64
	for i, arg := range ctx.Args {
		v, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			ctx.Err(fmt.Errorf("bad value %q: %v", arg, err))
			return
		}
		vals[i] = v
	}
	cmd := mqtt.VelocityCmd{Vx: float32(vals[0]), Vy: float32(vals[1]), Wz: float32(vals[2])}
	data, _ := json.Marshal(&cmd)
	c.queue.Pub(mqtt.TopicVelocity, data)
}

func (c *console) watchCmd(ctx *ishell.Context) {
	if len(ctx.Args) != 1 {
		ctx.Err(fmt.Errorf("usage: watch TOPIC (ctrl-c to stop)"))
		return
	}
	c.queue.Sub(ctx.Args[0], func(topic string, payload []byte) {
		fmt.Printf("%s: %s\n", topic, string(payload))
	})
	ctx.ReadLine()
}

func main() {
	flag.Parse()

	queue, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	token := queue.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer queue.Close()

	c := newConsole(queue)
	sh := ishell.New()
	sh.Println("mculink console")
	sh.AddCmd(&ishell.Cmd{Name: "health", Help: "show link health", Func: c.healthCmd})
	sh.AddCmd(&ishell.Cmd{Name: "debug", Help: "show debug value table", Func: c.debugCmd})
	sh.AddCmd(&ishell.Cmd{Name: "vel", Help: "vel VX VY WZ - set command velocity", Func: c.velCmd})
	sh.AddCmd(&ishell.Cmd{Name: "watch", Help: "watch TOPIC - print messages", Func: c.watchCmd})
	sh.Run()
}
