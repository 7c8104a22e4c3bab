package events

import (
	"slices"

	"github.com/KirkDiggler/possess/internal/domain/robot"
	"github.com/KirkDiggler/possess/internal/domain/scene"
	"github.com/KirkDiggler/possess/internal/domain/world"
	"go.uber.org/zap"
)

type responder[T any] struct {
	id     string
	answer func() T
}

func removeResponder[T any](list []responder[T], id string) []responder[T] {
	idx := slices.IndexFunc(list, func(r responder[T]) bool { return r.id == id })
	if idx < 0 {
		return list
	}
	return slices.Delete(slices.Clone(list), idx, idx+1)
}

// latest returns the most recently registered responder, which is the one
// that answers a request
func latest[T any](list []responder[T]) (func() T, bool) {
	if len(list) == 0 {
		return nil, false
	}
	return list[len(list)-1].answer, true
}

func (b *Bus) addResponder(eventType EventType, register func(id string)) Subscription {
	sub := Subscription{ID: b.uuidGenerator.New(), Type: eventType}

	b.mu.Lock()
	register(sub.ID)
	b.mu.Unlock()

	b.logger.Debug("responder registered",
		zap.Stringer("request", eventType),
		zap.String("subscription_id", sub.ID))

	return sub
}

// RespondPlayerReference registers the answer to RequestPlayerReference
func (b *Bus) RespondPlayerReference(answer func() world.GameObject) Subscription {
	return b.addResponder(RequestPlayerReference, func(id string) {
		b.playerReference = append(b.playerReference, responder[world.GameObject]{id: id, answer: answer})
	})
}

// RespondSceneIndices registers the answer to RequestSceneIndices
func (b *Bus) RespondSceneIndices(answer func() scene.Indices) Subscription {
	return b.addResponder(RequestSceneIndices, func(id string) {
		b.sceneIndices = append(b.sceneIndices, responder[scene.Indices]{id: id, answer: answer})
	})
}

// RespondCurrentSceneIndex registers the answer to RequestCurrentSceneIndex
func (b *Bus) RespondCurrentSceneIndex(answer func() int) Subscription {
	return b.addResponder(RequestCurrentSceneIndex, func(id string) {
		b.currentSceneIndex = append(b.currentSceneIndex, responder[int]{id: id, answer: answer})
	})
}

// RespondSpawningRobotType registers the answer to RequestSpawningRobotType
func (b *Bus) RespondSpawningRobotType(answer func() robot.Type) Subscription {
	return b.addResponder(RequestSpawningRobotType, func(id string) {
		b.spawningRobotType = append(b.spawningRobotType, responder[robot.Type]{id: id, answer: answer})
	})
}

// RequestPlayerReference returns the player's world object. Without a
// responder the configured PlayerLookup is used.
func (b *Bus) RequestPlayerReference() world.GameObject {
	b.mu.RLock()
	answer, ok := latest(b.playerReference)
	b.mu.RUnlock()

	if ok {
		return answer()
	}

	b.logger.Debug("no player reference responder, using lookup")
	if b.playerLookup == nil {
		return nil
	}
	return b.playerLookup()
}

// RequestSceneIndices returns the menu and level indices. Without a
// responder the configured defaults are returned.
func (b *Bus) RequestSceneIndices() scene.Indices {
	b.mu.RLock()
	answer, ok := latest(b.sceneIndices)
	b.mu.RUnlock()

	if ok {
		return answer()
	}

	b.logger.Debug("no scene indices responder, using defaults",
		zap.Stringer("indices", b.defaultSceneIndices))
	return b.defaultSceneIndices
}

// RequestCurrentSceneIndex returns the loaded scene index, or
// scene.Unresolved when nothing responds
func (b *Bus) RequestCurrentSceneIndex() int {
	b.mu.RLock()
	answer, ok := latest(b.currentSceneIndex)
	b.mu.RUnlock()

	if ok {
		return answer()
	}
	return scene.Unresolved
}

// RequestSpawningRobotType returns the robot type the player spawns as, or
// robot.TypeDefault when nothing responds
func (b *Bus) RequestSpawningRobotType() robot.Type {
	b.mu.RLock()
	answer, ok := latest(b.spawningRobotType)
	b.mu.RUnlock()

	if ok {
		return answer()
	}
	return robot.TypeDefault
}
