package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/possess/internal/domain/input"
	"github.com/KirkDiggler/possess/internal/domain/robot"
	"github.com/KirkDiggler/possess/internal/domain/scene"
	"github.com/KirkDiggler/possess/internal/domain/world"
	apperr "github.com/KirkDiggler/possess/internal/errors"
	"github.com/KirkDiggler/possess/internal/events"
	"github.com/KirkDiggler/possess/internal/robots"
	"github.com/KirkDiggler/possess/internal/scenes"
	"github.com/KirkDiggler/possess/internal/services/level"
	"github.com/KirkDiggler/possess/internal/services/menu"
	"github.com/KirkDiggler/possess/internal/services/player"
)

type action int

const (
	actionBroadcast action = iota
	actionStart
	actionQuit
	actionComplete
	actionStatus
)

type command struct {
	action action
	event  events.Event
}

var inputWords = map[string]input.Type{
	"w":       input.TypeMoveForward,
	"forward": input.TypeMoveForward,
	"s":       input.TypeMoveBackward,
	"back":    input.TypeMoveBackward,
	"a":       input.TypeMoveLeft,
	"left":    input.TypeMoveLeft,
	"d":       input.TypeMoveRight,
	"right":   input.TypeMoveRight,
	"stop":    input.TypeMoveRelease,
	"act":     input.TypeActionKeyDown,
	"rest":    input.TypeActionKeyUp,
	"e":       input.TypePossessKeyDown,
	"possess": input.TypePossessKeyDown,
	"p":       input.TypePauseKeyDown,
	"pause":   input.TypePauseKeyDown,
}

// parseCommand turns one console line into a command
func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{}, apperr.InvalidArgumentf("empty command")
	}

	if in, ok := inputWords[fields[0]]; ok && len(fields) == 1 {
		return command{event: events.InputEvent{Input: in}}, nil
	}

	switch fields[0] {
	case "click":
		if len(fields) != 3 {
			return command{}, apperr.InvalidArgumentf("usage: click <x> <y>")
		}
		x, errX := strconv.ParseFloat(fields[1], 64)
		y, errY := strconv.ParseFloat(fields[2], 64)
		if errX != nil || errY != nil {
			return command{}, apperr.InvalidArgumentf("invalid click coordinates %q %q", fields[1], fields[2])
		}
		return command{event: events.MouseInputEvent{
			Button:   input.MouseButtonLeft,
			Down:     true,
			Position: world.Vec3(x, y, 0),
		}}, nil
	case "caught":
		return command{event: events.PlayerCaughtEvent{}}, nil
	case "start":
		return command{action: actionStart}, nil
	case "quit", "exit":
		return command{action: actionQuit}, nil
	case "complete":
		return command{action: actionComplete}, nil
	case "status":
		return command{action: actionStatus}, nil
	default:
		return command{}, apperr.InvalidArgumentf("unknown command %q", line)
	}
}

// readCommands parses lines from r onto out until r is exhausted
func readCommands(r io.Reader, out chan<- command, log *zap.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		cmd, err := parseCommand(scanner.Text())
		if err != nil {
			log.Warn("ignoring command", zap.Error(err))
			continue
		}
		out <- cmd
	}
	if err := scanner.Err(); err != nil {
		log.Warn("command input closed", zap.Error(err))
	}
}

// console applies commands on the update thread
type console struct {
	bus        *events.Bus
	menu       *menu.Menu
	controller *player.Controller
	machine    *level.StateMachine
	manager    *scenes.Manager
	body       *world.Body
	log        *zap.Logger
	commands   <-chan command
}

// Update drains every queued command
func (c *console) Update(time.Duration) {
	for {
		select {
		case cmd := <-c.commands:
			c.apply(cmd)
		default:
			return
		}
	}
}

func (c *console) apply(cmd command) {
	switch cmd.action {
	case actionBroadcast:
		c.bus.Broadcast(cmd.event)
	case actionStart:
		c.menu.StartPressed()
	case actionQuit:
		c.menu.QuitPressed()
		if !c.menu.Visible() {
			c.bus.Broadcast(events.RequestQuitEvent{})
		}
	case actionComplete:
		c.bus.Broadcast(events.LevelCompletedEvent{
			SceneIndex: scene.Unresolved,
			RobotType:  c.possessedType(),
		})
	case actionStatus:
		c.status()
	}
}

func (c *console) possessedType() robot.Type {
	if r, ok := c.controller.Primary().(*robots.Robot); ok {
		return r.RobotType()
	}
	return robot.TypeDefault
}

func (c *console) status() {
	fields := []zap.Field{
		zap.String("scene", c.manager.CurrentName()),
		zap.Stringer("state", c.machine.State()),
		zap.Stringer("player", c.body.Position()),
		zap.Int("secondaries", len(c.controller.Secondaries())),
	}
	if p := c.controller.Primary(); p != nil {
		fields = append(fields, zap.String("primary", p.GameObject().ID()))
	}
	c.log.Info("status", fields...)
}
