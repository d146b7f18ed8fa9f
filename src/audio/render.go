package audio

// ----- Renderer ----- //

// Renderer is the render loop: it owns the Bank and the receiving end of the
// Queue. Process is called once per output buffer from a single goroutine and
// never blocks.
type Renderer struct {
	sampleRate float64
	queue      *Queue
	bank       *Bank
}

func NewRenderer(sampleRate float64, queue *Queue, initial ...Params) *Renderer {
	return &Renderer{
		sampleRate: sampleRate,
		queue:      queue,
		bank:       NewBank(initial...),
	}
}

// Process applies every pending update, then fills out with one summed sample
// per slot. Updates are drained once per call, so several updates to the same
// index within one buffer leave only the last one visible.
func (r *Renderer) Process(out []float32) {
	r.Drain()
	for i := range out {
		out[i] = float32(r.bank.Next(r.sampleRate))
	}
}

// Drain applies pending updates in arrival order and returns how many it applied.
func (r *Renderer) Drain() int {
	n := 0
	for {
		u, ok := r.queue.TryRecv()
		if !ok {
			return n
		}
		r.bank.Apply(u)
		n++
	}
}

func (r *Renderer) SampleRate() float64 {
	return r.sampleRate
}

// Bank must only be used from the goroutine that calls Process.
func (r *Renderer) Bank() *Bank {
	return r.bank
}

// Close stops accepting updates. Call it once the device stops calling Process.
func (r *Renderer) Close() {
	r.queue.Close()
}
