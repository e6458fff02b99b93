package bridge

import "sync"

// noopBridge is a NativeBridge that accepts all calls without side effects.
type noopBridge struct{}

func (noopBridge) InvokeMethod(channel, method string, args []byte) ([]byte, error) {
	return DefaultCodec.Encode(nil)
}
func (noopBridge) StartEventStream(string) error { return nil }
func (noopBridge) StopEventStream(string) error  { return nil }

// SetupTestBridge installs a no-op native bridge for testing. The cleanup
// function should be testing.T.Cleanup or equivalent; it registers a
// teardown that calls ResetForTest.
//
//	bridge.SetupTestBridge(t.Cleanup)
func SetupTestBridge(cleanup func(func())) {
	SetNativeBridge(noopBridge{})
	cleanup(ResetForTest)
}

// BridgeCall records a single method invocation seen by a ScriptedBridge.
type BridgeCall struct {
	Channel string
	Method  string
	Args    any
}

// ScriptedBridge is a NativeBridge test double. Tests register per-channel
// handlers that return canned responses, and can push events back into the
// bridge with Emit. Every method invocation is recorded.
type ScriptedBridge struct {
	mu       sync.Mutex
	handlers map[string]MethodHandler
	calls    []BridgeCall
}

// NewScriptedBridge creates an empty ScriptedBridge.
func NewScriptedBridge() *ScriptedBridge {
	return &ScriptedBridge{
		handlers: make(map[string]MethodHandler),
	}
}

// Handle registers a handler for all method calls on the given channel.
func (b *ScriptedBridge) Handle(channel string, fn MethodHandler) {
	b.mu.Lock()
	b.handlers[channel] = fn
	b.mu.Unlock()
}

// Calls returns a copy of the recorded invocations.
func (b *ScriptedBridge) Calls() []BridgeCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]BridgeCall, len(b.calls))
	copy(out, b.calls)
	return out
}

// CallCount returns how many times a method was invoked on a channel.
func (b *ScriptedBridge) CallCount(channel, method string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		if c.Channel == channel && c.Method == method {
			n++
		}
	}
	return n
}

// Emit delivers an event to subscribers of the named event channel, encoding
// the payload with the default codec.
func (b *ScriptedBridge) Emit(channel string, event any) error {
	data, err := DefaultCodec.Encode(event)
	if err != nil {
		return err
	}
	return HandleEvent(channel, data)
}

// InvokeMethod implements NativeBridge.
func (b *ScriptedBridge) InvokeMethod(channel, method string, args []byte) ([]byte, error) {
	decoded, err := DefaultCodec.Decode(args)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	b.calls = append(b.calls, BridgeCall{Channel: channel, Method: method, Args: decoded})
	fn := b.handlers[channel]
	b.mu.Unlock()

	if fn == nil {
		return DefaultCodec.Encode(nil)
	}
	result, err := fn(method, decoded)
	if err != nil {
		return nil, err
	}
	return DefaultCodec.Encode(result)
}

// StartEventStream implements NativeBridge.
func (b *ScriptedBridge) StartEventStream(string) error { return nil }

// StopEventStream implements NativeBridge.
func (b *ScriptedBridge) StopEventStream(string) error { return nil }
