package ecs_test

import (
	"fmt"

	"github.com/plus3/universe/ecs"
)

// DamageSystem applies queued "damage" commands to every entity with health.
type DamageSystem struct{}

func (DamageSystem) Execute(frame *ecs.UpdateFrame) error {
	frame.HandleCommand("damage", func(payload any) {
		amount := payload.(int)
		for rec := range frame.View("health") {
			rec.Get("health").(*Health).Current -= amount
		}
	})
	return nil
}

// ExampleUpdateFrame_SendCommand demonstrates systems talking through command
// queues instead of holding references to one another. A command sent to a
// system later in the update order is handled in the same update.
func ExampleUpdateFrame_SendCommand() {
	u := ecs.NewUniverse()

	hero := u.CreateEntity()
	u.AttachComponent(hero, "health", &Health{Current: 100, Max: 100})

	u.RegisterSystem("trap", ecs.SystemFunc(func(frame *ecs.UpdateFrame) error {
		return frame.SendCommand("damage", "damage", 15)
	}))
	u.RegisterSystem("damage", DamageSystem{})

	u.Update(false)
	u.Update(false)

	h, _ := u.GetComponent(hero, "health")
	fmt.Println("health:", h.(*Health).Current)

	err := u.RegisterSystem("damage", DamageSystem{})
	fmt.Println(err)

	// Output:
	// health: 70
	// ecs: duplicate system: "damage"
}
