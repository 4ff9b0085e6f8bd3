package discovery

// Light capability topics. Home Assistant infers the color mode from which ones are present.
const (
	FieldBrightnessCommandTopic = "brightness_command_topic"
	FieldBrightnessStateTopic   = "brightness_state_topic"

	FieldRGBCommandTopic = "rgb_command_topic"
	FieldRGBStateTopic   = "rgb_state_topic"

	FieldEffectCommandTopic = "effect_command_topic"
	FieldEffectStateTopic   = "effect_state_topic"
	FieldEffectList         = "effect_list"
)
