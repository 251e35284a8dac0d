// Command atlasd is the transport adapter (component C10): a TCP
// server exposing the atlas generation pipeline over a length-prefixed
// JSON protocol, one frame per request per connection-round-trip.
//
// Frame format, both directions: a 4-byte big-endian length prefix
// followed by exactly that many bytes of JSON.
package main

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net"

	"github.com/fontatlas/fontatlas"
	"github.com/fontatlas/fontatlas/internal/atlaserr"
	"github.com/fontatlas/fontatlas/internal/config"
)

// requestMessage mirrors spec.md §6's parameter table over the wire.
type requestMessage struct {
	Text          string `json:"text"`
	Font          string `json:"font"`
	Size          int    `json:"size"`
	Width         int    `json:"width"`
	Padding       int    `json:"padding"`
	Spacing       int    `json:"spacing"`
	AutoPack      bool   `json:"autoPack"`
	PackMode      string `json:"packMode"`
	EffectPadding int    `json:"effectPadding"`
	GlobalXAdv    int    `json:"globalXAdvance"`
	GlobalXOff    int    `json:"globalXOffset"`
	GlobalYOff    int    `json:"globalYOffset"`
}

// responseMessage matches the two fields the reference uWebSockets
// handler produced: a base64-encoded PNG and the raw descriptor text.
type responseMessage struct {
	Image string `json:"image"`
	Fnt   string `json:"fnt"`
}

func main() {
	addr := flag.String("addr", ":4567", "listen address")
	flag.Parse()

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("atlasd: listen: %v", err)
	}
	log.Printf("atlasd: listening on %s", *addr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Printf("atlasd: accept: %v", err)
			continue
		}
		go handleConn(conn)
	}
}

func handleConn(conn net.Conn) {
	defer conn.Close()

	for {
		payload, err := readFrame(conn)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("atlasd: %v: %v", atlaserr.ErrTransportDecode, err)
			}
			return
		}

		var msg requestMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			log.Printf("atlasd: %v: %v", atlaserr.ErrTransportDecode, err)
			return
		}

		req := toRequest(msg)
		resp, err := fontatlas.Generate(req)
		if err != nil {
			log.Printf("atlasd: generate: %v", err)
			return
		}

		out, err := json.Marshal(responseMessage{
			Image: base64.StdEncoding.EncodeToString(resp.Image),
			Fnt:   resp.Descriptor,
		})
		if err != nil {
			log.Printf("atlasd: encode response: %v", err)
			return
		}
		if err := writeFrame(conn, out); err != nil {
			log.Printf("atlasd: write: %v", err)
			return
		}
	}
}

// toRequest applies spec.md §6's defaults for any field the JSON
// payload left at its zero value.
func toRequest(msg requestMessage) fontatlas.Request {
	req := fontatlas.DefaultRequest()

	if msg.Text != "" {
		req.Text = msg.Text
	}
	if msg.Font != "" {
		req.Font = msg.Font
	}
	if msg.Size != 0 {
		req.Size = msg.Size
	}
	if msg.Width != 0 {
		req.Width = msg.Width
	}
	if msg.Padding != 0 {
		req.Padding = msg.Padding
	}
	if msg.Spacing != 0 {
		req.Spacing = msg.Spacing
	}
	req.AutoPack = msg.AutoPack
	if msg.PackMode == string(config.PackAligned) {
		req.PackMode = config.PackAligned
	}
	req.EffectPadding = msg.EffectPadding
	req.GlobalXAdvance = msg.GlobalXAdv
	req.GlobalXOffset = msg.GlobalXOff
	req.GlobalYOffset = msg.GlobalYOff

	return req
}

func readFrame(r io.Reader) ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("reading frame body: %w", err)
	}
	return buf, nil
}

func writeFrame(w io.Writer, payload []byte) error {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}
