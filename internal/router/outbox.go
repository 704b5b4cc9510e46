package router

import tea "charm.land/bubbletea/v2"

// Outbox queues navigation requested from inside an Update call. Sending
// to the program from Update would block, so the queue is drained into a
// command once the update returns.
type Outbox struct {
	queue []tea.Msg
}

// GoTo queues a named route.
func (o *Outbox) GoTo(route string, params map[string]string) {
	o.queue = append(o.queue, NavigateMsg{Route: route, Params: params})
}

// GoBack queues a pop.
func (o *Outbox) GoBack() {
	o.queue = append(o.queue, PopScreenMsg{})
}

// Warn queues a footer warning.
func (o *Outbox) Warn(err error) {
	o.queue = append(o.queue, WarnMsg{Err: err})
}

// Len returns the number of queued messages.
func (o *Outbox) Len() int {
	return len(o.queue)
}

// Drain empties the queue into a command that delivers the messages in
// order. Returns nil when nothing is queued.
func (o *Outbox) Drain() tea.Cmd {
	if len(o.queue) == 0 {
		return nil
	}
	msgs := o.queue
	o.queue = nil

	if len(msgs) == 1 {
		m := msgs[0]
		return func() tea.Msg { return m }
	}
	cmds := make([]tea.Cmd, len(msgs))
	for i, m := range msgs {
		cmds[i] = func() tea.Msg { return m }
	}
	return tea.Sequence(cmds...)
}
