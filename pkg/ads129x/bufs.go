package ads129x

import "sync"

var (
	framePool = &sync.Pool{New: func() interface{} { return make([]byte, FrameSize) }}
	threePool = &sync.Pool{New: func() interface{} { return make([]byte, 3) }}
	onePool   = &sync.Pool{New: func() interface{} { return make([]byte, 1) }}
)

func getFrame() []byte {
	return framePool.Get().([]byte)
}

func putFrame(b []byte) {
	for i := range b {
		b[i] = 0
	}
	framePool.Put(b)
}

func get3() []byte {
	return threePool.Get().([]byte)
}

func put3(b []byte) {
	b[0], b[1], b[2] = 0, 0, 0
	threePool.Put(b)
}

func get1() []byte {
	return onePool.Get().([]byte)
}

func put1(b []byte) {
	b[0] = 0
	onePool.Put(b)
}

// zeroFrame is the all-zero MOSI payload clocked out while reading one
// frame. Never written to.
var zeroFrame = make([]byte, FrameSize)
