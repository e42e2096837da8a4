package imageio

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
)

// WriteEXR writes img as an uncompressed, single-part scanline OpenEXR
// file with three 32-bit float channels in alphabetical ("B", "G", "R")
// order, the layout OpenEXR requires when channels aren't explicitly
// reordered. None of the example repos vendor an EXR codec, so this is
// a from-scratch minimal writer rather than an adapted library (see
// DESIGN.md) — it implements only what a renderer needs to produce:
// no compression, no tiling, no multipart, no deep data.
func WriteEXR(path string, img *Image) error {
	var header bytes.Buffer
	if err := writeEXRHeader(&header, img.Width, img.Height); err != nil {
		return err
	}

	le := binary.LittleEndian
	rowDataSize := img.Width * 3 * 4
	chunkSize := int64(4 + 4 + rowDataSize)

	offsetTableSize := int64(img.Height) * 8
	firstChunkOffset := int64(header.Len()) + offsetTableSize

	offsetTable := make([]byte, offsetTableSize)
	for y := 0; y < img.Height; y++ {
		le.PutUint64(offsetTable[y*8:y*8+8], uint64(firstChunkOffset+int64(y)*chunkSize))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(header.Bytes()); err != nil {
		return err
	}
	if _, err := f.Write(offsetTable); err != nil {
		return err
	}

	chunk := make([]byte, chunkSize)
	for y := 0; y < img.Height; y++ {
		le.PutUint32(chunk[0:4], uint32(y))
		le.PutUint32(chunk[4:8], uint32(rowDataSize))

		off := 8
		writeChannelRow(chunk[off:off+img.Width*4], img, y, 2) // B
		off += img.Width * 4
		writeChannelRow(chunk[off:off+img.Width*4], img, y, 1) // G
		off += img.Width * 4
		writeChannelRow(chunk[off:off+img.Width*4], img, y, 0) // R

		if _, err := f.Write(chunk); err != nil {
			return err
		}
	}
	return nil
}

func writeChannelRow(dst []byte, img *Image, y, channel int) {
	le := binary.LittleEndian
	for x := 0; x < img.Width; x++ {
		c := img.At(x, y)
		var v float32
		switch channel {
		case 0:
			v = c.X
		case 1:
			v = c.Y
		case 2:
			v = c.Z
		}
		le.PutUint32(dst[x*4:x*4+4], math.Float32bits(v))
	}
}

func writeEXRHeader(w *bytes.Buffer, width, height int) error {
	le := binary.LittleEndian

	if err := binary.Write(w, le, uint32(0x762f3101)); err != nil {
		return err
	}
	if err := binary.Write(w, le, uint32(2)); err != nil { // version 2: scanline, single-part
		return err
	}

	if err := writeChannelsAttr(w, []string{"B", "G", "R"}); err != nil {
		return err
	}
	if err := writeAttr(w, "compression", "compression", []byte{0}); err != nil { // NO_COMPRESSION
		return err
	}
	if err := writeBox2iAttr(w, "dataWindow", width, height); err != nil {
		return err
	}
	if err := writeBox2iAttr(w, "displayWindow", width, height); err != nil {
		return err
	}
	if err := writeAttr(w, "lineOrder", "lineOrder", []byte{0}); err != nil { // INCREASING_Y
		return err
	}
	if err := writeFloatAttr(w, "pixelAspectRatio", 1.0); err != nil {
		return err
	}
	if err := writeV2fAttr(w, "screenWindowCenter", 0, 0); err != nil {
		return err
	}
	if err := writeFloatAttr(w, "screenWindowWidth", 1.0); err != nil {
		return err
	}
	return w.WriteByte(0) // end of header
}

func writeAttr(w *bytes.Buffer, name, typ string, data []byte) error {
	w.WriteString(name)
	w.WriteByte(0)
	w.WriteString(typ)
	w.WriteByte(0)
	if err := binary.Write(w, binary.LittleEndian, uint32(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

func writeFloatAttr(w *bytes.Buffer, name string, v float32) error {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, math.Float32bits(v))
	return writeAttr(w, name, "float", data)
}

func writeV2fAttr(w *bytes.Buffer, name string, x, y float32) error {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint32(data[0:4], math.Float32bits(x))
	binary.LittleEndian.PutUint32(data[4:8], math.Float32bits(y))
	return writeAttr(w, name, "v2f", data)
}

func writeBox2iAttr(w *bytes.Buffer, name string, width, height int) error {
	data := make([]byte, 16)
	le := binary.LittleEndian
	le.PutUint32(data[0:4], 0)
	le.PutUint32(data[4:8], 0)
	le.PutUint32(data[8:12], uint32(width-1))
	le.PutUint32(data[12:16], uint32(height-1))
	return writeAttr(w, name, "box2i", data)
}

// writeChannelsAttr encodes the chlist attribute. Channel names must
// already be in the file's intended storage order and sorted
// alphabetically, which "B", "G", "R" satisfies.
func writeChannelsAttr(w *bytes.Buffer, names []string) error {
	var data bytes.Buffer
	for _, n := range names {
		data.WriteString(n)
		data.WriteByte(0)
		pt := make([]byte, 4)
		binary.LittleEndian.PutUint32(pt, 2) // FLOAT
		data.Write(pt)
		data.Write([]byte{0, 0, 0, 0}) // pLinear + reserved
		samp := make([]byte, 4)
		binary.LittleEndian.PutUint32(samp, 1)
		data.Write(samp)
		data.Write(samp)
	}
	data.WriteByte(0) // end of channel list
	return writeAttr(w, "channels", "chlist", data.Bytes())
}
