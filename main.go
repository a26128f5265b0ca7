package main

import (
	"os"

	"github.com/Slot148/tlist/gates/storage/list"
	"github.com/Slot148/tlist/models/entity"
	"github.com/Slot148/tlist/pkg"
	"github.com/bdlm/log"
)

func init() {
	// уровень и формат логов
	levelFlag := os.Getenv("LOG_LEVEL")
	if "" == levelFlag {
		levelFlag = "info"
	}
	level, err := log.ParseLevel(levelFlag)
	if nil != err {
		log.WithField("err", err).Warnf("%-v", err)
		level, _ = log.ParseLevel("debug")
	}
	log.SetFormatter(&log.TextFormatter{
		ForceTTY: true,
	})
	log.SetLevel(level)
}

func main() {
	wErr := pkg.NewWrappedError("main()")

	if err := runInts(); err != nil {
		wErr.Specify(err, "runInts()").LogError()
		os.Exit(1)
	}
	if err := runTexts(); err != nil {
		wErr.Specify(err, "runTexts()").LogError()
		os.Exit(1)
	}
	if err := runPeople(); err != nil {
		wErr.Specify(err, "runPeople()").LogError()
		os.Exit(1)
	}
	wErr.LogMsg("done")
}

func runInts() error {
	l := list.NewInt32()
	for _, v := range []int32{10, 20, 30} {
		if err := l.Append(v); err != nil {
			return err
		}
	}
	log.WithField("len", l.Len()).Infof("ints: %s", l)

	if v, ok := l.Peek(1); ok {
		log.Infof("ints: peek(1)=%d", v)
	}
	if err := l.Replace(1, 99); err != nil {
		return err
	}
	log.Infof("ints: %s", l)
	if err := l.InsertAt(1, 77); err != nil {
		return err
	}
	log.Infof("ints: %s", l)

	if v, ok := l.PopFront(); ok {
		log.Infof("ints: popFront=%d", v)
	}
	if v, ok := l.TakeAt(1); ok {
		log.Infof("ints: takeAt(1)=%d", v)
	}
	log.Infof("ints: %s", l)
	return l.Destroy()
}

func runTexts() error {
	l := list.NewText()
	for _, v := range []string{"Alice", "Bob", "Charlie"} {
		if err := l.Append(v); err != nil {
			return err
		}
	}
	log.Infof("texts: %s", l)

	if err := l.Replace(1, "Bobby"); err != nil {
		return err
	}
	log.Infof("texts: %s", l)
	if err := l.InsertAt(1, "Inserted"); err != nil {
		return err
	}
	log.Infof("texts: %s", l)

	if v, ok := l.PopFront(); ok {
		log.Infof("texts: popFront=%s", v)
	}
	if v, ok := l.TakeAt(1); ok {
		log.Infof("texts: takeAt(1)=%s", v)
	}
	if _, ok := l.Peek(100); !ok {
		log.Infof("texts: peek(100) not found")
	}
	log.Infof("texts: %s", l)
	return l.Destroy()
}

// runPeople хранит в списке ссылки на записи, которыми владеет вызывающая сторона.
// Записи освобождаются через ForEach, и только после этого уничтожается сам список.
func runPeople() error {
	l := list.NewOpaque[entity.Person]()
	for _, p := range []*entity.Person{
		entity.NewPerson("Joao", 30),
		entity.NewPerson("Maria", 25),
		entity.NewPerson("Pedro", 40),
	} {
		if err := l.Append(p); err != nil {
			return err
		}
	}

	cursor := l.Cursor()
	for cursor.HasNext() {
		p, err := cursor.Next()
		if err != nil {
			return err
		}
		log.WithField("index", cursor.Index()-1).Info(p.String())
	}
	if err := cursor.Release(); err != nil {
		return err
	}

	var releaseErr error
	err := l.ForEach(func(p *entity.Person) {
		if err := p.Release(); err != nil && releaseErr == nil {
			releaseErr = err
		}
	})
	if err != nil {
		return err
	}
	if releaseErr != nil {
		return releaseErr
	}
	return l.Destroy()
}
