package utils

import "log"

type logLevel struct {
	tag   string
	color string // ANSI escape, used when color print is on
}

var (
	levelInfo = logLevel{"INFO", "\033[32m"}
	levelWarn = logLevel{"WARN", "\033[33m"}
	levelErro = logLevel{"ERRO", "\033[31m"}
)

var _colorPrint = false

func SetColorPrint(enable bool) {
	_colorPrint = enable
}

func logf(lvl logLevel, format string, v ...interface{}) {
	if _colorPrint {
		log.Printf(lvl.color+lvl.tag+" "+format+"\033[0m\n", v...)
		return
	}
	log.Printf(lvl.tag+" "+format+"\n", v...)
}

func LogInfo(format string, v ...interface{}) {
	logf(levelInfo, format, v...)
}

func LogWarn(format string, v ...interface{}) {
	logf(levelWarn, format, v...)
}

func LogErro(format string, v ...interface{}) {
	logf(levelErro, format, v...)
}

func LogFatal(format string, v ...interface{}) {
	if _colorPrint {
		log.Fatalf("\033[31mFATAL "+format+"\033[0m\n", v...)
		return
	}
	log.Fatalf("FATAL "+format+"\n", v...)
}
