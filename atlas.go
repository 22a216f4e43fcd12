package atlasshift

import "errors"

// SpriteSourceSize is the offset and size of a trimmed sprite inside its
// original image. Fields hold number literals; members that are absent or not
// numeric stay empty.
type SpriteSourceSize struct {
	X, Y, W, H string
}

// FrameEntry is one sprite record of the frames list.
type FrameEntry struct {
	Index            int
	Filename         string // empty when the frame has no string filename
	SpriteSourceSize SpriteSourceSize

	node   *Value
	target *Value
}

// Target returns the literal of the adjusted number.
func (f FrameEntry) Target() string { return f.target.Number }

// AtlasDocument is a validated view over an atlas tree. Members the view does
// not model stay in Root untouched.
type AtlasDocument struct {
	Root   *Value
	Field  FieldPath
	Frames []FrameEntry
}

// NewAtlasDocument validates root against the atlas shape: an object whose
// frames member is an array of objects, each holding a number at field.
// All violations are collected unless failFast is set.
func NewAtlasDocument(root *Value, field FieldPath, failFast bool) (*AtlasDocument, error) {
	if len(field) == 0 {
		field = DefaultField
	}
	var iss Issues
	if root == nil || root.Kind != ObjectValue {
		return nil, AppendIssues(nil, Root().Issue(CodeInvalidType, "document must be an object", "expected", "object", "got", kindOf(root)))
	}
	framesRef := Root().Field("frames")
	frames, ok := root.Get("frames")
	if !ok {
		return nil, AppendIssues(nil, framesRef.Issue(CodeRequired, "frames is required"))
	}
	if frames.Kind != ArrayValue {
		return nil, AppendIssues(nil, framesRef.Issue(CodeInvalidType, "frames must be an array", "expected", "array", "got", frames.Kind.String()))
	}

	doc := &AtlasDocument{Root: root, Field: field, Frames: make([]FrameEntry, 0, len(frames.Items))}
	for i, fv := range frames.Items {
		ref := framesRef.Index(i)
		entry, issue, ok := frameEntry(i, fv, field, ref)
		if !ok {
			iss = AppendIssues(iss, issue)
			if failFast {
				return nil, iss
			}
			continue
		}
		doc.Frames = append(doc.Frames, entry)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return doc, nil
}

func frameEntry(i int, fv *Value, field FieldPath, ref PathRef) (FrameEntry, Issue, bool) {
	if fv.Kind != ObjectValue {
		return FrameEntry{}, ref.Issue(CodeInvalidType, "frame must be an object", "expected", "object", "got", fv.Kind.String()), false
	}
	cur := fv
	for n, name := range field {
		ref = ref.Field(name)
		next, ok := cur.Get(name)
		if !ok {
			return FrameEntry{}, ref.Issue(CodeRequired, name+" is required"), false
		}
		want := ObjectValue
		if n == len(field)-1 {
			want = NumberValue
		}
		if next.Kind != want {
			return FrameEntry{}, ref.Issue(CodeInvalidType, name+" must be of type "+want.String(), "expected", want.String(), "got", next.Kind.String()), false
		}
		cur = next
	}

	entry := FrameEntry{Index: i, node: fv, target: cur}
	if name, ok := fv.Get("filename"); ok && name.Kind == StringValue {
		entry.Filename = name.String
	}
	entry.SpriteSourceSize = sizeOf(fv)
	return entry, Issue{}, true
}

func numberAt(v *Value, key string) string {
	if n, ok := v.Get(key); ok && n.Kind == NumberValue {
		return n.Number
	}
	return ""
}

func kindOf(v *Value) string {
	if v == nil {
		return "nothing"
	}
	return v.Kind.String()
}

// Shift adds delta to the target number of every frame, in order. The document
// is left unchanged when any frame fails.
func (d *AtlasDocument) Shift(delta int64) error {
	next := make([]string, len(d.Frames))
	var iss Issues
	for i, f := range d.Frames {
		lit, err := AddDelta(f.target.Number, delta)
		if err != nil {
			ref := Root().Field("frames").Index(f.Index)
			for _, name := range d.Field {
				ref = ref.Field(name)
			}
			code := CodeInvalidType
			if errors.Is(err, errNotFinite) {
				code = CodeOverflow
			}
			iss = AppendIssues(iss, ref.Issue(code, err.Error(), "value", f.target.Number, "delta", delta))
			continue
		}
		next[i] = lit
	}
	if len(iss) > 0 {
		return iss
	}
	for i := range d.Frames {
		d.Frames[i].target.Number = next[i]
		d.Frames[i].SpriteSourceSize = sizeOf(d.Frames[i].node)
	}
	return nil
}

func sizeOf(frame *Value) SpriteSourceSize {
	sss, ok := frame.Get("spriteSourceSize")
	if !ok {
		return SpriteSourceSize{}
	}
	return SpriteSourceSize{X: numberAt(sss, "x"), Y: numberAt(sss, "y"), W: numberAt(sss, "w"), H: numberAt(sss, "h")}
}
