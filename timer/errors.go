package timer

import "github.com/ayoisaiah/countdown/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format",
	}

	errUnknownTone = &apperr.Error{
		Message: "unknown built-in sound: %s",
	}

	errCmdParse = &apperr.Error{
		Message: "unable to parse settings.cmd option",
	}

	errNotify = &apperr.Error{
		Message: "unable to display notification",
	}

	errPlaySound = &apperr.Error{
		Message: "unable to play sound",
	}
)
