package cartridge

import (
	"testing"
)

func buildImage(prgBlocks, chrBlocks int, flag6, flag7, flag8, flag10 byte, trainer bool) []uint8 {
	hdr := make([]uint8, headerSize)
	copy(hdr[0:4], magic[:])
	hdr[4] = byte(prgBlocks)
	hdr[5] = byte(chrBlocks)
	hdr[6] = flag6
	hdr[7] = flag7
	hdr[8] = flag8
	hdr[10] = flag10

	img := append([]uint8(nil), hdr...)
	if trainer {
		img = append(img, make([]uint8, trainerSize)...)
	}
	img = append(img, make([]uint8, prgBlocks*prgBlockSize)...)
	img = append(img, make([]uint8, chrBlocks*chrBlockSize)...)
	return img
}

func TestParseNROM(t *testing.T) {
	img := buildImage(2, 1, 0x01, 0x00, 0, 0x00, false)
	c, err := Parse(img)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := len(c.PRG), 2*prgBlockSize; got != want {
		t.Errorf("len(PRG) = %d, want %d", got, want)
	}
	if got, want := len(c.CHR), 1*chrBlockSize; got != want {
		t.Errorf("len(CHR) = %d, want %d", got, want)
	}
	if c.Mirroring != MirrorHorizontal {
		t.Errorf("Mirroring = %v, want MirrorHorizontal", c.Mirroring)
	}
	if c.CHRIsRAM() {
		t.Error("CHRIsRAM() true, want false (CHR blocks declared)")
	}
}

func TestParseCHRRAMFallback(t *testing.T) {
	img := buildImage(1, 0, 0x00, 0x00, 0, 0x00, false)
	c, err := Parse(img)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !c.CHRIsRAM() {
		t.Error("CHRIsRAM() false, want true (CHR blocks == 0)")
	}
}

func TestParseBadMagic(t *testing.T) {
	img := buildImage(1, 1, 0, 0, 0, 0, false)
	img[0] = 'X'
	if _, err := Parse(img); err == nil {
		t.Fatal("Parse succeeded on bad magic, want BadHeader")
	} else if _, ok := err.(BadHeader); !ok {
		t.Errorf("err = %T, want BadHeader", err)
	}
}

func TestParseUnrecognizedMapper(t *testing.T) {
	img := buildImage(1, 1, 0x10, 0x00, 0, 0, false) // mapper nibble 1 -> mapper 1
	if _, err := Parse(img); err == nil {
		t.Fatal("Parse succeeded on mapper 1, want UnrecognizedMemoryMapper")
	} else if e, ok := err.(UnrecognizedMemoryMapper); !ok || e.Mapper != 1 {
		t.Errorf("err = %#v, want UnrecognizedMemoryMapper{Mapper: 1}", err)
	}
}

func TestParseTrainer(t *testing.T) {
	img := buildImage(1, 1, 0x04, 0x00, 0, 0, true)
	c, err := Parse(img)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := len(c.Trainer), trainerSize; got != want {
		t.Errorf("len(Trainer) = %d, want %d", got, want)
	}
}

func TestParseMissingPRGROM(t *testing.T) {
	img := buildImage(2, 0, 0, 0, 0, 0, false)
	img = img[:headerSize+prgBlockSize] // truncate, claims 2 blocks but has 1
	if _, err := Parse(img); err == nil {
		t.Fatal("Parse succeeded on truncated PRG, want MissingPRGROM")
	} else if _, ok := err.(MissingPRGROM); !ok {
		t.Errorf("err = %T, want MissingPRGROM", err)
	}
}

func TestParsePRGRAMBanksDefault(t *testing.T) {
	img := buildImage(1, 1, 0, 0, 0, 0, false) // flag8 = 0
	c, err := Parse(img)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := c.PRGRAMBanks, 1; got != want {
		t.Errorf("PRGRAMBanks = %d, want %d (zero normalizes to 1)", got, want)
	}
}
