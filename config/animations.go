package config

import "image/color"

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32 // ticks per frame
}

// CharacterAnimations maps an animation set (a profile's "animations" key)
// to its per-state clip definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"ninja_frog": {
		Idle:          {First: 0, Last: 10, Step: 1, Speed: 3},
		Running:       {First: 0, Last: 11, Step: 1, Speed: 2},
		Jumping:       {First: 0, Last: 0, Step: 1, Speed: 0},
		Falling:       {First: 0, Last: 0, Step: 1, Speed: 0},
		DoubleJumping: {First: 0, Last: 5, Step: 1, Speed: 2},
		WallSliding:   {First: 0, Last: 4, Step: 1, Speed: 3},
	},
	"mask_dude": {
		Idle:          {First: 0, Last: 10, Step: 1, Speed: 3},
		Running:       {First: 0, Last: 11, Step: 1, Speed: 2},
		Jumping:       {First: 0, Last: 0, Step: 1, Speed: 0},
		Falling:       {First: 0, Last: 0, Step: 1, Speed: 0},
		DoubleJumping: {First: 0, Last: 5, Step: 1, Speed: 2},
		WallSliding:   {First: 0, Last: 4, Step: 1, Speed: 3},
	},
	"pink_man": {
		Idle:          {First: 0, Last: 10, Step: 1, Speed: 4},
		Running:       {First: 0, Last: 11, Step: 1, Speed: 2},
		Jumping:       {First: 0, Last: 0, Step: 1, Speed: 0},
		Falling:       {First: 0, Last: 0, Step: 1, Speed: 0},
		DoubleJumping: {First: 0, Last: 5, Step: 1, Speed: 3},
		WallSliding:   {First: 0, Last: 4, Step: 1, Speed: 3},
	},
	"virtual_guy": {
		Idle:          {First: 0, Last: 10, Step: 1, Speed: 3},
		Running:       {First: 0, Last: 11, Step: 1, Speed: 1},
		Jumping:       {First: 0, Last: 0, Step: 1, Speed: 0},
		Falling:       {First: 0, Last: 0, Step: 1, Speed: 0},
		DoubleJumping: {First: 0, Last: 5, Step: 1, Speed: 2},
		WallSliding:   {First: 0, Last: 4, Step: 1, Speed: 3},
	},
}

// SkinDef is how a sprite key is drawn. Characters are drawn as shapes, so a
// skin is a body and an accent color.
type SkinDef struct {
	Body   color.RGBA
	Accent color.RGBA
}

var Skins = map[string]SkinDef{
	"ninja_frog":  {Body: color.RGBA{R: 70, G: 180, B: 90, A: 255}, Accent: Red},
	"mask_dude":   {Body: color.RGBA{R: 235, G: 150, B: 40, A: 255}, Accent: color.RGBA{R: 30, G: 30, B: 30, A: 255}},
	"pink_man":    {Body: color.RGBA{R: 240, G: 130, B: 180, A: 255}, Accent: White},
	"virtual_guy": {Body: LightBlue, Accent: DarkBlue},
}

// FallbackSkin is used for sprite keys missing from Skins.
var FallbackSkin = SkinDef{Body: White, Accent: Red}
