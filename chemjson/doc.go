package chemjson

//Package chemjson implements serialization of molcalc results.
//It's planned use is the communication of molcalc with other,
//independent programs which can be written in languages other
//than Go, as long as those languages implement a way of
//unserializing JSON data, for instance, via UNIX pipes.
//Every container also carries YAML tags, so the same values
//can be written as YAML.
