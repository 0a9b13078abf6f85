// Command bitblob_vector_gen regenerates the conformance vectors under
// testdata/conformance/bitblob. Run it from the module root.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"xdao.co/bitblob/bitblob"
)

func main() {
	// Little-endian storage of the 256-bit genesis vector.
	raw := []byte{
		0x6f, 0xe2, 0x8c, 0x0a, 0xb6, 0xf1, 0xb3, 0x72,
		0xc1, 0xa6, 0xa2, 0x46, 0xae, 0x63, 0xf7, 0x4f,
		0x93, 0x1e, 0x83, 0x65, 0xe1, 0x5a, 0x08, 0x9c,
		0x68, 0xd6, 0x19, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	b := bitblob.FromBytes(raw)

	root := filepath.Join("testdata", "conformance", "bitblob")
	if err := os.MkdirAll(root, 0o755); err != nil {
		panic(err)
	}

	binPath := filepath.Join(root, "genesis_256.bin")
	if err := os.WriteFile(binPath, b.Bytes(), 0o644); err != nil {
		panic(err)
	}
	hexPath := filepath.Join(root, "genesis_256.hex")
	if err := os.WriteFile(hexPath, []byte(b.String()+"\n"), 0o644); err != nil {
		panic(err)
	}

	fmt.Println("wrote", binPath)
	fmt.Println("wrote", hexPath)
}
