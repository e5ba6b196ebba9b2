package texdump

// Texture is a decoded texture resource. Encode never modifies it.
type Texture struct {
	Name     string
	Width    uint32
	Height   uint32
	Encoding PixelEncoding
	MipMap   bool
	Data     []byte
}

// Output is one encoded container file.
type Output struct {
	Data      []byte
	Name      string
	Extension string
	Container Container
	// Level is the mip level stored in Data for containers that write one
	// file per level, zero otherwise.
	Level int
}

// FileName returns the suggested file name with extension.
func (o Output) FileName() string {
	return o.Name + "." + o.Extension
}

func newOutput(name string, c Container, level int, data []byte) Output {
	return Output{
		Data:      data,
		Name:      name,
		Extension: c.Extension(),
		Container: c,
		Level:     level,
	}
}

// Result holds everything produced for one texture. A skipped texture has no
// outputs and exactly one skip.
type Result struct {
	Outputs []Output
	Skips   []Skip
}

// Skipped reports whether the texture was left out.
func (r *Result) Skipped() bool {
	return len(r.Skips) > 0
}

type encodeFunc func(*Texture) ([]Output, error)

var encoders = map[Container]encodeFunc{
	ContainerDDS: encodeDDS,
	ContainerKTX: encodeKTX,
	ContainerTGA: encodeTGA,
	ContainerPKM: encodePKM,
}

// Encode converts tex into the container selected for its encoding.
func Encode(tex *Texture) (*Result, error) {
	return EncodeAs(tex, ContainerNone)
}

// EncodeAs converts tex into container c. ContainerNone selects the
// container from the encoding. A container that cannot hold the encoding
// yields a skip.
func EncodeAs(tex *Texture, c Container) (*Result, error) {
	if len(tex.Data) == 0 {
		return skip(tex, SkipEmptyPayload), nil
	}
	if !tex.Encoding.Known() {
		return skip(tex, SkipUnknownEncoding), nil
	}

	if c == ContainerNone {
		c = SelectContainer(tex.Encoding)
	}
	encode, ok := encoders[c]
	if !ok || !c.Supports(tex.Encoding) {
		return skip(tex, SkipUnsupportedEncoding), nil
	}

	if tex.Width == 0 || tex.Height == 0 {
		return nil, contractError(tex, ErrInvalidDimensions)
	}

	outputs, err := encode(tex)
	if err != nil {
		return nil, contractError(tex, err)
	}

	return &Result{Outputs: outputs}, nil
}

func skip(tex *Texture, reason SkipReason) *Result {
	return &Result{Skips: []Skip{{Name: tex.Name, Encoding: tex.Encoding, Reason: reason}}}
}

func contractError(tex *Texture, err error) error {
	return &ContractError{Name: tex.Name, Encoding: tex.Encoding, Err: err}
}
