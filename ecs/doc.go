// Package ecs provides an entity–component–system runtime built around a
// Universe: a Storage of entities carrying named components, and a Scheduler
// that runs named systems in registration order. Systems query storage with
// views, message each other through per-system command queues, and can be
// throttled with schedules or frozen.
package ecs
