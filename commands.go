package ssd1306

// Controller opcodes.
const (
	cmdColumnAddr            = 0x21
	cmdPageAddr              = 0x22
	cmdRightHorizontalScroll = 0x26
	cmdLeftHorizontalScroll  = 0x27
	cmdDeactivateScroll      = 0x2E
	cmdActivateScroll        = 0x2F
	cmdMemoryMode            = 0x20
	cmdSetStartLine          = 0x40
	cmdSetContrast           = 0x81
	cmdChargePump            = 0x8D
	cmdSegRemap              = 0xA1
	cmdDisplayAllOnResume    = 0xA4
	cmdNormalDisplay         = 0xA6
	cmdInvertDisplay         = 0xA7
	cmdSetMultiplex          = 0xA8
	cmdDisplayOff            = 0xAE
	cmdDisplayOn             = 0xAF
	cmdComScanDec            = 0xC8
	cmdSetDisplayOffset      = 0xD3
	cmdSetDisplayClockDiv    = 0xD5
	cmdSetPrecharge          = 0xD9
	cmdSetComPins            = 0xDA
	cmdSetVcomDetect         = 0xDB
)

// Control bytes prefixed to every transferred byte.
const (
	controlCommand = 0x00
	controlData    = 0x40
)

// busyFlag is bit 7 of the status byte.
const busyFlag = 0x80
