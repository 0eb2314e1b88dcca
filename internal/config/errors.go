package config

import "github.com/ayoisaiah/countdown/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s must be between %v and %v",
	}

	errInvalidCLIField = &apperr.Error{
		Message: "--%s must be between 0 and 99 (got %d)",
	}

	errUnknownSound = &apperr.Error{
		Message: "unknown alert sound: %s",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidColor = &apperr.Error{
		Message: "display color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errEmptyMsg = &apperr.Error{
		Message: "notification message cannot be empty",
	}

	errPrompt = &apperr.Error{
		Message: "user prompt failed",
	}
)
